package chart

// Glyphs used by the renderers.
const (
	GlyphHorizontal = '─'
	GlyphVertical   = '│'
	GlyphFall       = '╲'
	GlyphRise       = '╱'
	GlyphCross      = '┼'
	GlyphAxis       = '┤'
	GlyphPoint      = '●'
	GlyphBlock      = '█'
	GlyphDot        = '·'
)

// Brush decides what a line segment leaves behind in each cell it crosses.
type Brush interface {
	// Glyph returns the glyph for a segment moving dx columns and dy rows.
	Glyph(dx, dy int) rune
	// Merge returns the glyph for a cell currently holding old.
	Merge(old, glyph rune) rune
}

// Directional draws each segment with a glyph matching its direction and
// crosses horizontal and vertical strokes where they meet.
type Directional struct{}

func (Directional) Glyph(dx, dy int) rune {
	switch {
	case dy == 0:
		return GlyphHorizontal
	case dx == 0:
		return GlyphVertical
	case (dx > 0) == (dy > 0):
		// rows grow downward, so this is down-right or up-left
		return GlyphFall
	default:
		return GlyphRise
	}
}

func (Directional) Merge(old, glyph rune) rune {
	if old == ' ' {
		return glyph
	}
	if (horizontal(old) && vertical(glyph)) || (vertical(old) && horizontal(glyph)) {
		return GlyphCross
	}
	return glyph
}

func horizontal(r rune) bool { return r == GlyphHorizontal || r == GlyphCross }
func vertical(r rune) bool   { return r == GlyphVertical || r == GlyphCross }

// Uniform marks every crossed cell with one glyph. The first write wins.
type Uniform struct {
	Dot rune
}

func (u Uniform) Glyph(int, int) rune {
	if u.Dot == 0 {
		return GlyphDot
	}
	return u.Dot
}

func (Uniform) Merge(old, glyph rune) rune {
	if old != ' ' {
		return old
	}
	return glyph
}
