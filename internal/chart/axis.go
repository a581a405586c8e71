package chart

import (
	"math"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
)

// tickLimit bounds the number of tick values generated for one axis. Wider
// domains get a proportionally larger step.
const tickLimit = 4096

// Tick is a labeled row on the y axis.
type Tick struct {
	Row   int
	Label string
}

// Ticks maps rows to labels. Rows iterate in ascending order; a second
// label for the same row replaces the first.
type Ticks struct {
	rows   []int
	labels map[int]string
}

// NewTicks returns an empty tick map.
func NewTicks() *Ticks {
	return &Ticks{labels: make(map[int]string)}
}

// Put records label at row, replacing any earlier label there.
func (t *Ticks) Put(row int, label string) {
	if _, ok := t.labels[row]; !ok {
		i, _ := slices.BinarySearch(t.rows, row)
		t.rows = slices.Insert(t.rows, i, row)
	}
	t.labels[row] = label
}

// Get returns the label at row.
func (t *Ticks) Get(row int) (string, bool) {
	label, ok := t.labels[row]
	return label, ok
}

// Len returns the number of labeled rows.
func (t *Ticks) Len() int { return len(t.rows) }

// All returns the ticks in row order.
func (t *Ticks) All() []Tick {
	out := make([]Tick, len(t.rows))
	for i, row := range t.rows {
		out[i] = Tick{Row: row, Label: t.labels[row]}
	}
	return out
}

// Width returns the display width of the widest label.
func (t *Ticks) Width() int {
	w := 0
	for _, label := range t.labels {
		w = max(w, runewidth.StringWidth(label))
	}
	return w
}

// YTicks labels the rows of every step multiple from the domain minimum up
// to the domain maximum.
func YTicks(sc Scale, step float64, format func(float64) string) *Ticks {
	if step <= 0 {
		step = DefaultStep
	}
	d := sc.Domain
	if n := math.Floor((d.Max-d.Min)/step) + 1; n > tickLimit {
		step *= math.Ceil(n / tickLimit)
	}

	ticks := NewTicks()
	for i := 0; ; i++ {
		v := d.Min + float64(i)*step
		if v > d.Max {
			break
		}
		ticks.Put(sc.Row(v), format(v))
	}
	return ticks
}

// axisGlyph returns the glyph joining the label column to row r.
func axisGlyph(ticks *Ticks, r, baseline int) rune {
	if _, ok := ticks.Get(r); ok || r == baseline {
		return GlyphCross
	}
	return GlyphAxis
}

// padStart right-aligns s within width display columns.
func padStart(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

// compose joins the canvas rows behind the y-axis labels.
func compose(c *Canvas, ticks *Ticks, padding string) string {
	width := ticks.Width()
	baseline := c.Rows() - 1

	var b strings.Builder
	for r, n := 0, c.Rows(); r < n; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		label, _ := ticks.Get(r)
		b.WriteString(padding)
		b.WriteString(padStart(label, width))
		b.WriteByte(' ')
		b.WriteRune(axisGlyph(ticks, r, baseline))
		b.WriteString(c.Row(r))
	}
	return b.String()
}
