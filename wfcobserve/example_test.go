package wfcobserve_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wfc/stateset"
	"github.com/katalvlaran/wfc/wfcobserve"
)

// ExampleUniform collapses a two-state superposition to a single state.
func ExampleUniform() {
	rng := rand.New(rand.NewSource(42))
	cell := stateset.NewFromStates(2, []int{0, 1})

	wfcobserve.Uniform{}.Observe(cell, nil, rng)
	fmt.Println(cell.Entropy())
	// Output: 0
}
