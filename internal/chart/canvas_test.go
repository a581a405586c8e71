package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasBlank(t *testing.T) {
	c := NewCanvas(3, 2)
	require.Equal(t, 3, c.Rows())
	assert.Equal(t, "   \n   \n   ", c.String())
}

func TestCanvasDropsOutOfRangeWrites(t *testing.T) {
	c := NewCanvas(3, 1)
	assert.NotPanics(t, func() {
		c.Set(-1, 0, 'x')
		c.Set(2, 0, 'x')
		c.Set(0, -1, 'x')
		c.Set(0, 3, 'x')
		c.Line(-2, -2, 5, 5, Directional{})
	})
	assert.Equal(t, ' ', c.At(-1, 0))
	assert.Equal(t, ' ', c.At(0, 3))
}

func TestCanvasText(t *testing.T) {
	c := NewCanvas(4, 0)
	c.Text(0, 2, "$1.00")
	assert.Equal(t, "  $1", c.Row(0))

	c = NewCanvas(4, 0)
	c.Text(0, -1, "abc")
	assert.Equal(t, "bc  ", c.Row(0))
}

func TestLineHorizontal(t *testing.T) {
	c := NewCanvas(5, 2)
	c.Line(0, 1, 4, 1, Directional{})
	assert.Equal(t, "─────", c.Row(1))
}

func TestLineVertical(t *testing.T) {
	c := NewCanvas(1, 2)
	c.Line(0, 2, 0, 0, Directional{})
	assert.Equal(t, "│\n│\n│", c.String())
}

func TestLineDiagonals(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Line(0, 0, 2, 2, Directional{})
	assert.Equal(t, "╲  \n ╲ \n  ╲", c.String())

	c = NewCanvas(3, 2)
	c.Line(0, 2, 2, 0, Directional{})
	assert.Equal(t, "  ╱\n ╱ \n╱  ", c.String())

	// up-left is the same stroke as down-right
	c = NewCanvas(3, 2)
	c.Line(2, 2, 0, 0, Directional{})
	assert.Equal(t, "╲  \n ╲ \n  ╲", c.String())
}

func TestLineSteepCoversEveryRow(t *testing.T) {
	c := NewCanvas(2, 4)
	c.Line(0, 4, 1, 0, Directional{})
	for r, n := 0, c.Rows(); r < n; r++ {
		assert.Contains(t, c.Row(r), "╱", "row %d", r)
	}
}

func TestDirectionalCrosses(t *testing.T) {
	c := NewCanvas(5, 2)
	c.Line(0, 1, 4, 1, Directional{})
	c.Line(2, 0, 2, 2, Directional{})
	assert.Equal(t, GlyphCross, c.At(1, 2))
	assert.Equal(t, GlyphHorizontal, c.At(1, 1))
	assert.Equal(t, GlyphVertical, c.At(0, 2))
}

func TestDirectionalNewGlyphWinsOtherwise(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Line(0, 1, 2, 1, Directional{})
	c.Line(0, 0, 2, 2, Directional{})
	assert.Equal(t, GlyphFall, c.At(1, 1))
}

func TestUniformFirstWriteWins(t *testing.T) {
	c := NewCanvas(4, 0)
	c.Set(0, 1, 'x')
	c.Line(0, 0, 3, 0, Uniform{})
	assert.Equal(t, "·x··", c.Row(0))
}

func TestUniformCustomDot(t *testing.T) {
	assert.Equal(t, '*', Uniform{Dot: '*'}.Glyph(1, 1))
	assert.Equal(t, GlyphDot, Uniform{}.Glyph(0, 5))
}

func TestDirectionalGlyph(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{3, 0, GlyphHorizontal},
		{0, 0, GlyphHorizontal},
		{0, -2, GlyphVertical},
		{2, 2, GlyphFall},
		{-2, -1, GlyphFall},
		{2, -2, GlyphRise},
		{-1, 3, GlyphRise},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Directional{}.Glyph(tt.dx, tt.dy), "dx=%d dy=%d", tt.dx, tt.dy)
	}
}
