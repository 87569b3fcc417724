package wfcpattern

import "github.com/katalvlaran/wfc/spacegeom"

// transformOption applies f to o's value when present, leaving an absent
// cell absent.
func transformOption[T Tile[T]](o Option[T], f func(T) T) Option[T] {
	if !o.Present {
		return o
	}

	return Option[T]{Value: f(o.Value), Present: true}
}

// flipAlongAxis mirrors cells along axis within its n×n frame, permuting
// positions and transforming each present tile's value via Tile.Flip —
// per §4.6 Step 2, the tile value itself must flip along with its
// position (the canonical example: '-' and '|' swap under a flip).
func flipAlongAxis[T Tile[T]](cells []Option[T], n int, axis spacegeom.Axis) []Option[T] {
	out := make([]Option[T], n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			flipped := transformOption(cells[y*n+x], func(v T) T { return v.Flip(axis) })
			switch axis {
			case spacegeom.AxisX2D:
				out[y*n+(n-1-x)] = flipped
			case spacegeom.AxisY2D:
				out[(n-1-y)*n+x] = flipped
			default:
				panic(ErrUnknownAxis)
			}
		}
	}

	return out
}

// rotateCW rotates cells 90 degrees clockwise within its n×n frame,
// permuting positions and transforming each present tile's value via
// Tile.Perp.
func rotateCW[T Tile[T]](cells []Option[T], n int, axis spacegeom.RotationAxis) []Option[T] {
	out := make([]Option[T], n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x*n+(n-1-y)] = transformOption(cells[y*n+x], func(v T) T { return v.Perp(axis) })
		}
	}

	return out
}

// symmetryVariants returns cells plus its image under every combination of
// the flips in flipAxes (each axis is applied to all images gathered so far,
// so flipping along both axes of a Grid2D also yields the doubly flipped
// window), and — when rotationAxis is non-nil — every one of those images
// (including cells itself) carried through all four quarter turns. nil
// flipAxes with a nil rotationAxis (both defaults) yields just cells,
// unchanged.
func symmetryVariants[T Tile[T]](cells []Option[T], n int, flipAxes []spacegeom.Axis, rotationAxis spacegeom.RotationAxis) [][]Option[T] {
	seeds := make([][]Option[T], 0, 1<<len(flipAxes))
	seeds = append(seeds, cells)
	for _, axis := range flipAxes {
		for _, seed := range seeds {
			seeds = append(seeds, flipAlongAxis(seed, n, axis))
		}
	}

	if rotationAxis == nil {
		return seeds
	}

	variants := make([][]Option[T], 0, len(seeds)*4)
	for _, seed := range seeds {
		cur := seed
		variants = append(variants, cur)
		for i := 0; i < 3; i++ {
			cur = rotateCW(cur, n, rotationAxis)
			variants = append(variants, cur)
		}
	}

	return variants
}
