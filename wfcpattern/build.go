package wfcpattern

import (
	"github.com/katalvlaran/wfc/spacegeom"
	"github.com/katalvlaran/wfc/stateset"
	"github.com/katalvlaran/wfc/wfcobserve"
	"github.com/katalvlaran/wfc/wfcrule"
)

var patternDirections = []spacegeom.Direction{spacegeom.Right2D, spacegeom.Up2D, spacegeom.Left2D, spacegeom.Down2D}

// positiveDirections is the half of patternDirections a Rule's symmetric
// closure derives the other half from; declaring only these to the builder
// avoids computing each compatibility check twice.
var positiveDirections = []spacegeom.Direction{spacegeom.Right2D, spacegeom.Up2D}

func invertPatternDirection(d spacegeom.Direction) spacegeom.Direction {
	return (&spacegeom.Grid2D[struct{}]{}).InvertDirection(d)
}

func directionOffset(d spacegeom.Direction) (dx, dy int) {
	switch d {
	case spacegeom.Right2D:
		return 1, 0
	case spacegeom.Up2D:
		return 0, 1
	case spacegeom.Left2D:
		return -1, 0
	case spacegeom.Down2D:
		return 0, -1
	default:
		panic(spacegeom.ErrUnknownDirection)
	}
}

// optionsCompatible treats an absent cell as unconstrained: a border
// window's None padding carries no information, so it can never block a
// compatibility check the way a concrete disagreeing value would.
func optionsCompatible[T Tile[T]](a, b Option[T]) bool {
	if !a.Present || !b.Present {
		return true
	}

	return a.Value == b.Value
}

// compatible reports whether b, placed (dx,dy) cells away from a, agrees
// with a on their shared n-1-cell overlap.
func compatible[T Tile[T]](a, b []Option[T], n, dx, dy int) bool {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			bx, by := x-dx, y-dy
			if bx < 0 || bx >= n || by < 0 || by >= n {
				continue
			}
			if !optionsCompatible(a[y*n+x], b[by*n+bx]) {
				return false
			}
		}
	}

	return true
}

// ExtractedPatterns is the compiled output of Extract: a state alphabet of
// deduplicated patterns, the adjacency Rule their overlaps imply, and a
// frequency-weighted Observer ready to drive wfccollapse.Collapse. It
// satisfies wfcobserve.Observer directly via its embedded Weighted.
type ExtractedPatterns[T Tile[T]] struct {
	N    int
	Rule *wfcrule.Rule
	*wfcobserve.Weighted

	patterns []*patternInfo[T]
}

// K returns the size of the pattern alphabet.
func (p *ExtractedPatterns[T]) K() int {
	return len(p.patterns)
}

// Directions returns the direction table the compiled Rule was built over.
func (p *ExtractedPatterns[T]) Directions() []spacegeom.Direction {
	return patternDirections
}

// Center returns the tile value at a pattern's middle cell, the value
// DecodeSuperposition writes for a cell resolved to that state. The center
// cell is sampled at zero net offset from its window's anchor, so it is
// always present by construction; a panic here means extractWindows built
// an inconsistent window.
func (p *ExtractedPatterns[T]) Center(state int) T {
	mid := p.N / 2
	opt := p.patterns[state].cells[mid*p.N+mid]
	if !opt.Present {
		panic(ErrCenterAbsent)
	}

	return opt.Value
}

// NewSuperpositionGrid builds a width×height grid of maximal superpositions
// over this pattern alphabet, ready for wfccollapse.Collapse.
func (p *ExtractedPatterns[T]) NewSuperpositionGrid(width, height int) *spacegeom.Grid2D[*stateset.Set] {
	k := p.K()

	return spacegeom.NewGrid2D(spacegeom.Coordinate2D{X: width, Y: height}, func(spacegeom.Coordinate2D) *stateset.Set {
		return stateset.NewAll(k)
	})
}

// DecodeSuperposition writes each resolved cell's pattern center into out.
// A cell that never collapsed to a singleton, or collapsed into a
// contradiction, is left at out's zero value; it counts toward unresolved
// rather than panicking, since an over-constrained decode is an ordinary
// outcome of solving, not a programming error (spec §7).
func (p *ExtractedPatterns[T]) DecodeSuperposition(solved *spacegeom.Grid2D[*stateset.Set], out *spacegeom.Grid2D[T]) (unresolved int) {
	solved.VisitCoordinates(func(c spacegeom.Coordinate2D) {
		cell := solved.At(c)
		if cell.IsEmpty() || cell.Entropy() != 0 {
			unresolved++

			return
		}
		out.Set(c, p.Center(cell.Iter()[0]))
	})

	return unresolved
}

// Extract samples one n×n window per coordinate of source (per
// WithWindowSize, default 3; see extractWindows for the border/None
// handling), optionally closing the sample set under WithFlipAxes and
// WithRotationAxis, deduplicates the result into a pattern alphabet, and
// compiles the adjacency Rule implied by how patterns overlap when placed
// one cell apart.
func Extract[T Tile[T]](source *spacegeom.Grid2D[T], opts ...ExtractOption) *ExtractedPatterns[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	raw := extractWindows(source, cfg.n)
	if len(cfg.flipAxes) > 0 || cfg.rotationAxis != nil {
		expanded := make([][]Option[T], 0, len(raw)*4)
		for _, w := range raw {
			expanded = append(expanded, symmetryVariants(w, cfg.n, cfg.flipAxes, cfg.rotationAxis)...)
		}
		raw = expanded
	}

	patterns := dedupe(raw)
	k := len(patterns)

	builder := wfcrule.NewBuilder(k, patternDirections, invertPatternDirection)
	for _, d := range positiveDirections {
		dx, dy := directionOffset(d)
		for _, a := range patterns {
			var neighbors []wfcrule.NeighborRule
			for _, b := range patterns {
				if compatible(a.cells, b.cells, cfg.n, dx, dy) {
					neighbors = append(neighbors, wfcrule.NeighborRule{Direction: d, State: b.id})
				}
			}
			if len(neighbors) > 0 {
				builder.Allow(a.id, neighbors)
			}
		}
	}

	weights := make([]int, k)
	for _, p := range patterns {
		weights[p.id] = p.weight
	}

	return &ExtractedPatterns[T]{
		N:        cfg.n,
		Rule:     builder.Build(),
		Weighted: &wfcobserve.Weighted{Weights: weights},
		patterns: patterns,
	}
}
