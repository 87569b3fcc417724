package wfcobserve

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/wfc/stateset"
)

// Weighted picks among the states present in cell proportionally to a
// per-state weight table, indexed by state. States absent from the
// superposition never enter the draw, regardless of their declared weight.
//
// Weights holds one entry per atomic state, 0..K-1; a negative or zero
// weight for every present state falls back to a uniform draw rather than
// panicking, since an all-zero row is a caller data issue, not a
// programming-error contract violation (spec §7 reserves panics for the
// latter).
type Weighted struct {
	Weights []int
}

// Observe implements Observer. Selection is a single cumulative-weight
// binary search over the present states, rather than pulling in a
// dedicated weighted-sampling library that the corpus never reaches for.
func (w *Weighted) Observe(cell *stateset.Set, _ []*stateset.Set, rng *rand.Rand) {
	states := cell.Iter()
	if len(states) == 0 {
		panic(ErrEmptyObserve)
	}

	cumulative := make([]int, len(states))
	total := 0
	for i, s := range states {
		total += w.Weights[s]
		cumulative[i] = total
	}

	if total <= 0 {
		cell.CollapseTo(states[rng.Intn(len(states))])

		return
	}

	r := rng.Intn(total)
	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > r })
	cell.CollapseTo(states[idx])
}
