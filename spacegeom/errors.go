package spacegeom

import "errors"

// Sentinel errors for spacegeom constructors.
var (
	// ErrEmptyDimensions indicates a grid was constructed with a
	// nonpositive width, height, or depth.
	ErrEmptyDimensions = errors.New("spacegeom: dimensions must be positive on every axis")

	// ErrUnknownDirection indicates DirectionIndex was asked to locate a
	// direction absent from the Space's Directions() list. Used as a
	// panic value, not returned: a caller passing an unrecognized
	// direction has a programming error, not a runtime condition to
	// recover from.
	ErrUnknownDirection = errors.New("spacegeom: direction not found in Directions()")

	// ErrUnequalRotationExtents indicates Perp was called on a coordinate
	// whose rotated axes have unequal extents. Also used as a panic
	// value.
	ErrUnequalRotationExtents = errors.New("spacegeom: perp requires equal extents on the rotated axes")
)
