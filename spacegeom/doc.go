// Package spacegeom defines the spatial-domain contract the solver and the
// pattern extractor are built against, plus the two concrete lattices
// (Grid2D and Grid3D) that ship with this module.
//
// Space[C, T] is the only seam through which wfccollapse and wfcpattern
// touch geometry: coordinates, dimensions, neighbor enumeration, and the
// flip/rotation operations the pattern extractor needs to generate
// symmetric variants of a sampled window. A caller wanting a non-grid
// topology (a hex grid, a graph-shaped world) implements the same
// interface; nothing in wfccollapse or wfcpattern assumes a rectangular
// layout beyond what Space[C, T] exposes.
//
// Both shipped grids are non-toroidal: Neighbor returns false at the
// boundary rather than wrapping around. Coordinate enumeration is
// row-major — y outer, x inner for Grid2D; z outer, y middle, x inner for
// Grid3D — which callers must treat as part of the contract since it
// determines pattern-extraction indices and solve determinism (see
// VisitCoordinates).
package spacegeom
