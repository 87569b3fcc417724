package wfcobserve

import (
	"math/rand"

	"github.com/katalvlaran/wfc/stateset"
)

// Uniform picks uniformly at random among the states still present in cell.
type Uniform struct{}

// Observe implements Observer.
func (Uniform) Observe(cell *stateset.Set, _ []*stateset.Set, rng *rand.Rand) {
	states := cell.Iter()
	if len(states) == 0 {
		panic(ErrEmptyObserve)
	}

	cell.CollapseTo(states[rng.Intn(len(states))])
}
