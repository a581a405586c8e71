package chart

import "strings"

// Canvas is a grid of (height+1) rows by width columns, stored row-major in
// a single buffer. Writes that fall outside the grid are dropped.
type Canvas struct {
	width  int
	height int
	cells  []rune
}

// NewCanvas returns a blank canvas. height excludes the baseline row.
func NewCanvas(width, height int) *Canvas {
	cells := make([]rune, (height+1)*width)
	for i := range cells {
		cells[i] = ' '
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Rows returns the number of rows, baseline included.
func (c *Canvas) Rows() int { return c.height + 1 }

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

func (c *Canvas) inside(row, col int) bool {
	return row >= 0 && row <= c.height && col >= 0 && col < c.width
}

// At returns the glyph at (row, col), or a space outside the grid.
func (c *Canvas) At(row, col int) rune {
	if !c.inside(row, col) {
		return ' '
	}
	return c.cells[row*c.width+col]
}

// Set overwrites the cell at (row, col).
func (c *Canvas) Set(row, col int, r rune) {
	if !c.inside(row, col) {
		return
	}
	c.cells[row*c.width+col] = r
}

// Text writes s rune by rune starting at (row, col), skipping runes that
// fall off the grid.
func (c *Canvas) Text(row, col int, s string) {
	for i, r := range []rune(s) {
		c.Set(row, col+i, r)
	}
}

// Line marks every cell on the discrete line from (x1,y1) to (x2,y2), x
// being the column and y the row. The brush picks the glyph and resolves
// cells that are already occupied.
func (c *Canvas) Line(x1, y1, x2, y2 int, b Brush) {
	glyph := b.Glyph(x2-x1, y2-y1)

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := sign(x2-x1), sign(y2-y1)
	err := dx - dy

	x, y := x1, y1
	for {
		c.paint(y, x, glyph, b)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func (c *Canvas) paint(row, col int, glyph rune, b Brush) {
	if !c.inside(row, col) {
		return
	}
	i := row*c.width + col
	c.cells[i] = b.Merge(c.cells[i], glyph)
}

// Row returns row r as a string.
func (c *Canvas) Row(r int) string {
	if r < 0 || r > c.height {
		return ""
	}
	return string(c.cells[r*c.width : (r+1)*c.width])
}

// String joins all rows with newlines.
func (c *Canvas) String() string {
	var b strings.Builder
	for r, n := 0, c.Rows(); r < n; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.Row(r))
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
