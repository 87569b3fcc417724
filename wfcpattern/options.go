package wfcpattern

import "github.com/katalvlaran/wfc/spacegeom"

// config holds Extract's tunables, assembled from ExtractOption the same
// way wfccollapse configures Collapse with functional options.
type config struct {
	n            int
	flipAxes     []spacegeom.Axis
	rotationAxis spacegeom.RotationAxis
}

// ExtractOption configures a single call to Extract.
type ExtractOption func(*config)

// WithWindowSize sets the side length of the square sampling window.
// Defaults to 3, matching the corpus's overlapping-model microbenchmark.
// Must be a positive odd number (see extractWindows).
func WithWindowSize(n int) ExtractOption {
	return func(cfg *config) {
		cfg.n = n
	}
}

// WithFlipAxes closes the sample set under a flip along each given axis,
// mirroring spec §6's codify_patterns(input, size, flip_symmetries,
// rotation_axis) flip_symmetries parameter: a list of axes, not a single
// on/off switch. Unset (the default), no flips are added.
func WithFlipAxes(axes ...spacegeom.Axis) ExtractOption {
	return func(cfg *config) {
		cfg.flipAxes = axes
	}
}

// WithRotationAxis closes the sample set under the four 90-degree turns
// around axis, independently of WithFlipAxes, mirroring spec §6's
// rotation_axis parameter. nil (the default) disables rotation; the only
// meaningful value for a Grid2D source is spacegeom.RotationAxis2D{}.
func WithRotationAxis(axis spacegeom.RotationAxis) ExtractOption {
	return func(cfg *config) {
		cfg.rotationAxis = axis
	}
}

func defaultConfig() *config {
	return &config{n: 3}
}
