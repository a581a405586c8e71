package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bamsammich/costgraph/internal/chart"
	"github.com/bamsammich/costgraph/internal/config"
)

// Catppuccin Mocha palette.
var (
	ColorGreen  = lipgloss.Color("#a6e3a1")
	ColorBlue   = lipgloss.Color("#89b4fa")
	ColorMauve  = lipgloss.Color("#cba6f7")
	ColorMuted  = lipgloss.Color("#5a6278")
	ColorBright = lipgloss.Color("#cdd6f4")
)

// Theme holds the styles applied to a rendered chart.
type Theme struct {
	Line  lipgloss.Style
	Point lipgloss.Style
	Bar   lipgloss.Style
	Axis  lipgloss.Style
	Label lipgloss.Style
}

// NewTheme builds a theme on r, taking colors from tc where set.
func NewTheme(r *lipgloss.Renderer, tc config.ThemeConfig) Theme {
	return Theme{
		Line:  r.NewStyle().Foreground(pick(tc.Line, ColorBlue)),
		Point: r.NewStyle().Foreground(pick(tc.Point, ColorMauve)).Bold(true),
		Bar:   r.NewStyle().Foreground(pick(tc.Bar, ColorGreen)),
		Axis:  r.NewStyle().Foreground(pick(tc.Axis, ColorMuted)),
		Label: r.NewStyle().Foreground(pick(tc.Label, ColorBright)),
	}
}

func pick(override *string, def lipgloss.Color) lipgloss.Color {
	if override != nil && *override != "" {
		return lipgloss.Color(*override)
	}
	return def
}

type cellClass int

const (
	classBlank cellClass = iota
	classText
	classLine
	classPoint
	classBar
)

func classify(r rune) cellClass {
	switch r {
	case ' ':
		return classBlank
	case chart.GlyphHorizontal, chart.GlyphVertical, chart.GlyphRise, chart.GlyphFall,
		chart.GlyphCross, chart.GlyphDot:
		return classLine
	case chart.GlyphPoint:
		return classPoint
	case chart.GlyphBlock:
		return classBar
	}
	return classText
}

// Colorize styles a rendered chart. On each line, everything before the
// first axis glyph is the label gutter; the rest is plot area.
func (t Theme) Colorize(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = t.colorizeLine(line)
	}
	return strings.Join(lines, "\n")
}

func (t Theme) colorizeLine(line string) string {
	cut := strings.IndexAny(line, string([]rune{chart.GlyphCross, chart.GlyphAxis}))
	if cut < 0 {
		return t.paint(line)
	}
	glyphLen := len(string(chart.GlyphCross))
	return t.Label.Render(line[:cut]) +
		t.Axis.Render(line[cut:cut+glyphLen]) +
		t.paint(line[cut+glyphLen:])
}

// paint styles runs of same-class runes as one unit.
func (t Theme) paint(body string) string {
	runes := []rune(body)
	var b strings.Builder
	for i := 0; i < len(runes); {
		c := classify(runes[i])
		j := i + 1
		for j < len(runes) && classify(runes[j]) == c {
			j++
		}
		b.WriteString(t.style(c, string(runes[i:j])))
		i = j
	}
	return b.String()
}

func (t Theme) style(c cellClass, s string) string {
	switch c {
	case classLine:
		return t.Line.Render(s)
	case classPoint:
		return t.Point.Render(s)
	case classBar:
		return t.Bar.Render(s)
	case classText:
		return t.Label.Render(s)
	}
	return s
}
