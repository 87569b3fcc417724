// Package wfcrule implements §4.3: the compiled adjacency table that the
// collapse loop consults during propagation, and the Builder that produces
// one from a list of one-directional Allow declarations.
//
// Rule itself never interprets directions; it only indexes them against the
// []spacegeom.Direction slice it was built with, via spacegeom.DirectionIndex.
// That keeps Rule agnostic to whether it governs a Grid2D, a Grid3D, or any
// future Space implementation, so long as the directions it was built with
// match the directions the collapse loop iterates.
package wfcrule
