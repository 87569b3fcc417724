package wfcobserve

import (
	"math/rand"

	"github.com/katalvlaran/wfc/stateset"
)

// Observer collapses cell to a single remaining state, in place. neighbors
// is supplied for policies that weight a choice by local context; Uniform
// and Weighted both ignore it, but the signature leaves room for a
// context-sensitive policy without changing the collapse loop's call site.
type Observer interface {
	Observe(cell *stateset.Set, neighbors []*stateset.Set, rng *rand.Rand)
}
