package chart

import (
	"math"
	"unicode/utf8"
)

// BarLayout is the horizontal geometry shared by every bar in a chart.
type BarLayout struct {
	Area  int // columns allotted to each bar, spacing included
	Width int // filled columns per bar
	Gap   int // columns between a slot's left edge and its bar
	limit int // canvas width
}

// NewBarLayout lays out n bars across a canvas of the given width. Column 0
// and the last column are left free.
func NewBarLayout(n, width int) BarLayout {
	area := (width - 2) / n
	bar := max(1, int(math.Floor(float64(area)*0.8)))
	gap := max(1, floorDiv(area-bar, 2))
	return BarLayout{Area: area, Width: bar, Gap: gap, limit: width}
}

// Slot returns the half-open column range [start, end) of bar i.
func (l BarLayout) Slot(i int) (start, end int) {
	start = 1 + i*l.Area + l.Gap
	end = min(start+l.Width, l.limit)
	return start, end
}

// drawBars fills one bar per non-missing value, bottom up, and writes the
// formatted value above bars that leave room for it.
func drawBars(c *Canvas, sc Scale, series []float64, format func(float64) string) {
	layout := NewBarLayout(len(series), c.Width())
	base := c.Rows() - 1

	for i, v := range series {
		if math.IsNaN(v) {
			continue
		}
		start, end := layout.Slot(i)
		h := round(sc.Norm(v) * float64(sc.Height))

		for row := base; row > base-h; row-- {
			for col := start; col < end; col++ {
				c.Set(row, col, GlyphBlock)
			}
		}

		if h < sc.Height-1 {
			label := format(v)
			col := start + floorDiv(layout.Width-utf8.RuneCountInString(label), 2)
			c.Text(base-h, col, label)
		}
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
