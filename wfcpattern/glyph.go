package wfcpattern

import "github.com/katalvlaran/wfc/spacegeom"

// Glyph is a ready-made Tile over the directional box-drawing characters
// spec §4.6 uses as its canonical example: '-' and '|' swap under either a
// flip or a 90-degree rotation, and every other rune passes through
// unchanged, orientation-independent.
type Glyph rune

// Flip implements Tile.
func (g Glyph) Flip(_ spacegeom.Axis) Glyph {
	return g.swap()
}

// Perp implements Tile.
func (g Glyph) Perp(_ spacegeom.RotationAxis) Glyph {
	return g.swap()
}

func (g Glyph) swap() Glyph {
	switch g {
	case '-':
		return '|'
	case '|':
		return '-'
	default:
		return g
	}
}
