// Package chart renders numeric series as fixed-width text charts built from
// Unicode box-drawing and block characters.
//
// Three renderers share one pipeline (domain, canvas, rasterizer or bar
// layout, y-axis labels) and differ only in the strategies they plug in:
//
//	Line   zero-based stepped domain, dotted segments, ● at each point
//	Bar    zero-based stepped domain, █ columns with value labels
//	Plain  tight data domain, directional ─ │ ╱ ╲ strokes
//
// Missing values are NaN. Output never carries color; callers style the
// returned string. Width and Height must be positive.
package chart

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownMode is returned by ParseMode for an unrecognized mode name.
var ErrUnknownMode = errors.New("unknown chart mode")

// Mode selects a renderer.
type Mode int

const (
	ModeLine Mode = iota + 1
	ModeBar
	ModePlain
)

var modeNames = [...]string{
	ModeLine:  "line",
	ModeBar:   "bar",
	ModePlain: "plain",
}

func (m Mode) String() string {
	if m > 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode maps a mode name to its Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name != "" && strings.EqualFold(name, s) {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w %q (use line, bar or plain)", ErrUnknownMode, s)
}

// Options configures a render.
type Options struct {
	Width   int    // canvas columns
	Height  int    // canvas rows above the baseline
	Padding string // prefix for every output line
	Format  func(float64) string
}

func (o Options) format() func(float64) string {
	if o.Format == nil {
		return DefaultFormat
	}
	return o.Format
}

// style is the strategy set that distinguishes one renderer from another.
type style struct {
	domain DomainPolicy
	brush  Brush
	marker rune // stamped on each point; 0 for none
	bars   bool
	// tail closes the single-point rule.
	tail string
}

func styleFor(m Mode) style {
	switch m {
	case ModeBar:
		return style{domain: Stepped{Step: DefaultStep}, bars: true, tail: string(GlyphBlock)}
	case ModePlain:
		return style{domain: Tight{}, brush: Directional{}}
	default:
		return style{
			domain: Stepped{Step: DefaultStep},
			brush:  Uniform{Dot: GlyphDot},
			marker: GlyphPoint,
			tail:   string(GlyphPoint),
		}
	}
}

// Render draws series with the renderer selected by m.
func Render(m Mode, series []float64, opts Options) string {
	return render(styleFor(m), series, opts)
}

// Line draws series as dotted segments on a zero-based stepped domain with a
// marker at every point.
func Line(series []float64, opts Options) string {
	return render(styleFor(ModeLine), series, opts)
}

// Bar draws one filled column per value on a zero-based stepped domain.
func Bar(series []float64, opts Options) string {
	return render(styleFor(ModeBar), series, opts)
}

// Plain draws series with directional strokes on the tight data domain.
func Plain(series []float64, opts Options) string {
	return render(styleFor(ModePlain), series, opts)
}

type point struct {
	index int
	value float64
}

func present(series []float64) []point {
	pts := make([]point, 0, len(series))
	for i, v := range series {
		if !math.IsNaN(v) {
			pts = append(pts, point{index: i, value: v})
		}
	}
	return pts
}

func render(st style, series []float64, opts Options) string {
	format := opts.format()
	pts := present(series)

	switch len(pts) {
	case 0:
		return ""
	case 1:
		return opts.Padding + format(pts[0].value) + " " + string(GlyphCross) +
			strings.Repeat(string(GlyphHorizontal), opts.Width) + st.tail
	}

	sc := Scale{
		Domain: st.domain.Domain(series),
		Width:  opts.Width,
		Height: opts.Height,
		Len:    len(series),
	}
	c := NewCanvas(opts.Width, opts.Height)

	if st.bars {
		drawBars(c, sc, series, format)
	} else {
		trace(c, sc, pts, st.brush, st.marker)
	}

	return compose(c, YTicks(sc, DefaultStep, format), opts.Padding)
}

// trace connects consecutive points, then stamps markers over the line.
func trace(c *Canvas, sc Scale, pts []point, b Brush, marker rune) {
	for i := 1; i < len(pts); i++ {
		a, z := pts[i-1], pts[i]
		c.Line(sc.Col(a.index), sc.Row(a.value), sc.Col(z.index), sc.Row(z.value), b)
	}
	if marker == 0 {
		return
	}
	for _, p := range pts {
		c.Set(sc.Row(p.value), sc.Col(p.index), marker)
	}
}
