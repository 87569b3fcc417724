package wfcpattern

import "github.com/katalvlaran/wfc/spacegeom"

// Tile constrains the atomic values a source grid may hold: comparable,
// so windows can be deduplicated by value equality, and able to transform
// itself under a flip along an axis or a 90-degree rotation around a
// pivot. §4.6's canonical example is a pair of box-drawing glyphs, '-' and
// '|', that swap under either transform; a tile alphabet indifferent to
// orientation implements both as the identity function.
type Tile[T any] interface {
	comparable
	Flip(axis spacegeom.Axis) T
	Perp(axis spacegeom.RotationAxis) T
}

// Option is a possibly-absent tile value: the window cell sampled from
// outside the source grid's bounds. The zero value is absent.
type Option[T any] struct {
	Value   T
	Present bool
}

// extractWindows samples one n×n window per coordinate of source, centered
// on that coordinate: window cell (i,j) is the tile at the anchor offset by
// (i-n/2, j-n/2). n must be a positive odd number so every window has a
// well-defined center cell. Anchors near the border produce windows whose
// out-of-range cells are left Option-absent rather than being skipped —
// every source coordinate gets a window, including the border ones, per
// §4.6 Step 1's "for every coordinate p of input" (checked the same way
// Grid2D.AddSub checks any other coordinate arithmetic: by bounds, not by
// excluding the anchor).
func extractWindows[T Tile[T]](source *spacegeom.Grid2D[T], n int) [][]Option[T] {
	if n <= 0 || n%2 == 0 {
		panic(ErrInvalidWindowSize)
	}
	half := n / 2

	dims := source.Dimensions()
	windows := make([][]Option[T], 0, dims.X*dims.Y)
	source.VisitCoordinates(func(p spacegeom.Coordinate2D) {
		cells := make([]Option[T], n*n)
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				c, ok := source.AddSub(p, spacegeom.Coordinate2D{X: i, Y: j}, spacegeom.Coordinate2D{X: half, Y: half})
				if ok {
					cells[j*n+i] = Option[T]{Value: source.At(c), Present: true}
				}
			}
		}
		windows = append(windows, cells)
	})

	return windows
}
