package wfccollapse

import (
	"math/rand"

	"github.com/katalvlaran/wfc/spacegeom"
	"github.com/katalvlaran/wfc/stateset"
	"github.com/katalvlaran/wfc/wfcobserve"
	"github.com/katalvlaran/wfc/wfcrule"
)

// Collapse runs one full solve attempt over space: it repeatedly selects the
// minimum-entropy unresolved cell, observes it, and propagates the change
// via a FIFO worklist until the whole space is resolved or a contradiction
// is found. space's cells must already hold a *stateset.Set of length
// rule.K() (typically stateset.NewAll(rule.K()) everywhere, for a solve
// starting from maximal superposition).
//
// Collapse returns a *ContradictionError[C] when narrowing empties a cell;
// that is an ordinary, non-fatal outcome (spec §7), not a panic.
func Collapse[C comparable](
	space spacegeom.Space[C, *stateset.Set],
	rule *wfcrule.Rule,
	observer wfcobserve.Observer,
	rng *rand.Rand,
	opts ...CollapseOption[C],
) error {
	cfg := newConfig(opts)

	var result error
	stateset.Scope(rule.K(), func() {
		result = collapse(space, rule, observer, rng, cfg)
	})

	return result
}

func collapse[C comparable](
	space spacegeom.Space[C, *stateset.Set],
	rule *wfcrule.Rule,
	observer wfcobserve.Observer,
	rng *rand.Rand,
	cfg *config[C],
) error {
	queue := make([]C, 0, 16)
	inQueue := make(map[C]bool)

	enqueue := func(c C) {
		if !inQueue[c] {
			inQueue[c] = true
			queue = append(queue, c)
		}
	}

	gatherNeighbors := func(c C) []*stateset.Set {
		dirs := space.Directions()
		neighbors := make([]*stateset.Set, len(dirs))
		for i, d := range dirs {
			if nc, ok := space.Neighbor(c, d); ok {
				neighbors[i] = space.At(nc)
			}
		}

		return neighbors
	}

	propagate := func() error {
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			inQueue[cur] = false

			cell := space.At(cur)
			if cell.Entropy() == 0 {
				continue
			}
			if !rule.Narrow(cell, gatherNeighbors(cur)) {
				continue
			}
			if cell.IsEmpty() {
				return &ContradictionError[C]{Coordinate: cur}
			}

			for _, d := range space.Directions() {
				if nc, ok := space.Neighbor(cur, d); ok {
					enqueue(nc)
				}
			}
		}

		return nil
	}

	// Seed the worklist with every cell that isn't already resolved and run
	// an initial propagation pass before the first observation. This matters
	// when the caller has pre-narrowed some cells before calling Collapse
	// (e.g. forbidding certain patterns on the border, per §4.5
	// Initialization): those cells' neighbors must be brought into arc
	// consistency before entropy is ever measured for selection.
	space.VisitCoordinates(func(c C) {
		if space.At(c).Entropy() > 0 {
			enqueue(c)
		}
	})
	if err := propagate(); err != nil {
		return err
	}

	for {
		next, found := selectMinEntropy(space, rng)
		if !found {
			return nil
		}

		cell := space.At(next)
		if cell.IsEmpty() {
			return &ContradictionError[C]{Coordinate: next}
		}

		observer.Observe(cell, gatherNeighbors(next), rng)
		if cfg.onObserve != nil {
			cfg.onObserve(next, cell)
		}

		for _, d := range space.Directions() {
			if nc, ok := space.Neighbor(next, d); ok {
				enqueue(nc)
			}
		}
		if err := propagate(); err != nil {
			return err
		}
	}
}

// selectMinEntropy scans every coordinate for the minimum positive entropy,
// then breaks ties uniformly at random among the coordinates achieving it.
// found is false once every cell is resolved (entropy 0 everywhere).
func selectMinEntropy[C comparable](space spacegeom.Space[C, *stateset.Set], rng *rand.Rand) (coordinate C, found bool) {
	minEntropy := -1
	var candidates []C

	space.VisitCoordinates(func(c C) {
		e := space.At(c).Entropy()
		if e == 0 {
			return
		}
		switch {
		case minEntropy == -1 || e < minEntropy:
			minEntropy = e
			candidates = []C{c}
		case e == minEntropy:
			candidates = append(candidates, c)
		}
	})

	if len(candidates) == 0 {
		return coordinate, false
	}

	return candidates[rng.Intn(len(candidates))], true
}
