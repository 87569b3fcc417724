package wfccollapse_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wfc/spacegeom"
	"github.com/katalvlaran/wfc/stateset"
	"github.com/katalvlaran/wfc/wfccollapse"
	"github.com/katalvlaran/wfc/wfcobserve"
	"github.com/katalvlaran/wfc/wfcrule"
)

// ExampleCollapse solves a trivial single-cell grid with one allowed state.
func ExampleCollapse() {
	rule := wfcrule.NewBuilder(1, directions2D, invert2D).Build()
	grid := spacegeom.NewGrid2D(spacegeom.Coordinate2D{X: 1, Y: 1}, func(spacegeom.Coordinate2D) *stateset.Set {
		return stateset.NewAll(1)
	})
	rng := rand.New(rand.NewSource(1))

	_ = wfccollapse.Collapse[spacegeom.Coordinate2D](grid, rule, wfcobserve.Uniform{}, rng)
	fmt.Println(grid.At(spacegeom.Coordinate2D{X: 0, Y: 0}).Iter())
	// Output: [0]
}
