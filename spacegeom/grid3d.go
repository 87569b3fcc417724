package spacegeom

// Coordinate3D indexes a cell in a Grid3D.
type Coordinate3D struct {
	X, Y, Z int
}

// Direction3D enumerates the six orthogonal neighbor offsets of a Grid3D.
type Direction3D int

const (
	PosX3D Direction3D = iota
	NegX3D
	PosY3D
	NegY3D
	PosZ3D
	NegZ3D
)

func (d Direction3D) offset() (dx, dy, dz int) {
	switch d {
	case PosX3D:
		return 1, 0, 0
	case NegX3D:
		return -1, 0, 0
	case PosY3D:
		return 0, 1, 0
	case NegY3D:
		return 0, -1, 0
	case PosZ3D:
		return 0, 0, 1
	case NegZ3D:
		return 0, 0, -1
	default:
		panic(ErrUnknownDirection)
	}
}

// Axis3D identifies a component of a Coordinate3D.
type Axis3D int

const (
	AxisX3D Axis3D = iota
	AxisY3D
	AxisZ3D
)

// RotationAxis3D selects which axis a 90-degree rotation pivots around;
// the other two axes must share an extent for Perp to be valid.
type RotationAxis3D int

const (
	RotateAroundX3D RotationAxis3D = iota
	RotateAroundY3D
	RotateAroundZ3D
)

var grid3DDirections = []Direction{PosX3D, NegX3D, PosY3D, NegY3D, PosZ3D, NegZ3D}

// Grid3D is a rectangular-prism, non-toroidal lattice with axis-aligned
// integer coordinates, analogous to Grid2D in one more dimension.
type Grid3D[T any] struct {
	width, height, depth int
	cells                []T
}

// NewGrid3D constructs a width×height×depth grid, calling init once per
// coordinate in row-major order (z outer, y middle, x inner).
func NewGrid3D[T any](dims Coordinate3D, init func(Coordinate3D) T) *Grid3D[T] {
	if dims.X <= 0 || dims.Y <= 0 || dims.Z <= 0 {
		panic(ErrEmptyDimensions)
	}

	g := &Grid3D[T]{
		width:  dims.X,
		height: dims.Y,
		depth:  dims.Z,
		cells:  make([]T, dims.X*dims.Y*dims.Z),
	}
	g.VisitCoordinates(func(c Coordinate3D) {
		g.cells[g.index(c)] = init(c)
	})

	return g
}

func (g *Grid3D[T]) index(c Coordinate3D) int {
	return c.Z*g.width*g.height + c.Y*g.width + c.X
}

func (g *Grid3D[T]) inBounds(c Coordinate3D) bool {
	return c.X >= 0 && c.X < g.width &&
		c.Y >= 0 && c.Y < g.height &&
		c.Z >= 0 && c.Z < g.depth
}

// Dimensions returns {width, height, depth}.
func (g *Grid3D[T]) Dimensions() Coordinate3D {
	return Coordinate3D{X: g.width, Y: g.height, Z: g.depth}
}

// At returns the value stored at c.
func (g *Grid3D[T]) At(c Coordinate3D) T {
	return g.cells[g.index(c)]
}

// Set stores v at c.
func (g *Grid3D[T]) Set(c Coordinate3D, v T) {
	g.cells[g.index(c)] = v
}

// VisitCoordinates visits every cell in row-major order.
func (g *Grid3D[T]) VisitCoordinates(visit func(Coordinate3D)) {
	for z := 0; z < g.depth; z++ {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				visit(Coordinate3D{X: x, Y: y, Z: z})
			}
		}
	}
}

// Directions returns the six axis-aligned offsets.
func (g *Grid3D[T]) Directions() []Direction {
	return grid3DDirections
}

// Neighbor steps one cell in direction d, or reports false at the edge.
func (g *Grid3D[T]) Neighbor(c Coordinate3D, d Direction) (Coordinate3D, bool) {
	dir, ok := d.(Direction3D)
	if !ok {
		panic(ErrUnknownDirection)
	}
	dx, dy, dz := dir.offset()
	n := Coordinate3D{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
	if !g.inBounds(n) {
		return Coordinate3D{}, false
	}

	return n, true
}

// InvertDirection returns the negation of d.
func (g *Grid3D[T]) InvertDirection(d Direction) Direction {
	switch d.(Direction3D) {
	case PosX3D:
		return NegX3D
	case NegX3D:
		return PosX3D
	case PosY3D:
		return NegY3D
	case NegY3D:
		return PosY3D
	case PosZ3D:
		return NegZ3D
	case NegZ3D:
		return PosZ3D
	default:
		panic(ErrUnknownDirection)
	}
}

// AddSub computes start+add-sub componentwise, failing if out of bounds.
// Bounds are checked as 0 <= c < dimensions[axis] on every axis (spec §9
// Open Question 3), never the original's inconsistent dimensions-1 variant.
func (g *Grid3D[T]) AddSub(start, add, sub Coordinate3D) (Coordinate3D, bool) {
	n := Coordinate3D{
		X: start.X + add.X - sub.X,
		Y: start.Y + add.Y - sub.Y,
		Z: start.Z + add.Z - sub.Z,
	}
	if !g.inBounds(n) {
		return Coordinate3D{}, false
	}

	return n, true
}

// Map applies f componentwise over {AxisX3D, AxisY3D, AxisZ3D}.
func (g *Grid3D[T]) Map(c Coordinate3D, f func(axis Axis, value int) int) Coordinate3D {
	return Coordinate3D{
		X: f(AxisX3D, c.X),
		Y: f(AxisY3D, c.Y),
		Z: f(AxisZ3D, c.Z),
	}
}

// Perp rotates c 90 degrees counterclockwise around axis, within the
// bounding box formed by the two non-pivot dimensions. Panics via
// ErrUnequalRotationExtents when those two dimensions differ.
func (g *Grid3D[T]) Perp(c Coordinate3D, axis RotationAxis) Coordinate3D {
	switch axis.(RotationAxis3D) {
	case RotateAroundX3D:
		if g.height != g.depth {
			panic(ErrUnequalRotationExtents)
		}
		n := g.height

		return Coordinate3D{X: c.X, Y: c.Z, Z: n - 1 - c.Y}
	case RotateAroundY3D:
		if g.width != g.depth {
			panic(ErrUnequalRotationExtents)
		}
		n := g.width

		return Coordinate3D{X: c.Z, Y: c.Y, Z: n - 1 - c.X}
	case RotateAroundZ3D:
		if g.width != g.height {
			panic(ErrUnequalRotationExtents)
		}
		n := g.width

		return Coordinate3D{X: c.Y, Y: n - 1 - c.X, Z: c.Z}
	default:
		panic(ErrUnknownDirection)
	}
}
