package wfcrule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/spacegeom"
	"github.com/katalvlaran/wfc/stateset"
	"github.com/katalvlaran/wfc/wfcrule"
)

func invert2D(d spacegeom.Direction) spacegeom.Direction {
	g := spacegeom.NewGrid2D(spacegeom.Coordinate2D{X: 1, Y: 1}, func(spacegeom.Coordinate2D) struct{} { return struct{}{} })

	return g.InvertDirection(d)
}

const (
	stateA = 0
	stateB = 1
)

// TestRule_SymmetricClosure is scenario S5: build with Allow(A, [(Right, B)])
// only; after Build, both directions of the A-B adjacency must be present.
func TestRule_SymmetricClosure(t *testing.T) {
	b := wfcrule.NewBuilder(2, []spacegeom.Direction{spacegeom.Right2D, spacegeom.Up2D, spacegeom.Left2D, spacegeom.Down2D}, invert2D)
	b.Allow(stateA, []wfcrule.NeighborRule{{Direction: spacegeom.Right2D, State: stateB}})
	rule := b.Build()

	require.NotNil(t, rule.Allowed(stateA, spacegeom.Right2D))
	assert.True(t, rule.Allowed(stateA, spacegeom.Right2D).Has(stateB))

	require.NotNil(t, rule.Allowed(stateB, spacegeom.Left2D))
	assert.True(t, rule.Allowed(stateB, spacegeom.Left2D).Has(stateA))
}

func TestRule_Narrow_RemovesUnsupportedState(t *testing.T) {
	directions := []spacegeom.Direction{spacegeom.Right2D, spacegeom.Up2D, spacegeom.Left2D, spacegeom.Down2D}
	b := wfcrule.NewBuilder(2, directions, invert2D)
	b.Allow(stateA, []wfcrule.NeighborRule{{Direction: spacegeom.Right2D, State: stateB}})
	rule := b.Build()

	cell := stateset.NewFromStates(2, []int{stateA, stateB})
	neighborRight := stateset.NewFromStates(2, []int{stateA}) // only A present to the right

	neighbors := make([]*stateset.Set, len(directions))
	neighbors[0] = neighborRight

	changed := rule.Narrow(cell, neighbors)

	assert.True(t, changed)
	assert.False(t, cell.Has(stateA), "A declares no neighbor rule toward A on the right, so A cannot survive")
	assert.False(t, cell.Has(stateB), "B declares no right-neighbor rule at all, so a present right neighbor removes it")
}

func TestRule_Narrow_OutOfBoundsNeverRemoves(t *testing.T) {
	directions := []spacegeom.Direction{spacegeom.Right2D, spacegeom.Up2D, spacegeom.Left2D, spacegeom.Down2D}
	b := wfcrule.NewBuilder(2, directions, invert2D)
	b.Allow(stateA, []wfcrule.NeighborRule{{Direction: spacegeom.Right2D, State: stateB}})
	rule := b.Build()

	cell := stateset.NewFromStates(2, []int{stateA, stateB})
	neighbors := make([]*stateset.Set, len(directions)) // all nil: every direction is out of bounds

	changed := rule.Narrow(cell, neighbors)

	assert.False(t, changed)
	assert.Equal(t, 2, len(cell.Iter()))
}

func TestRule_Narrow_NoChangeWhenAlreadyConsistent(t *testing.T) {
	directions := []spacegeom.Direction{spacegeom.Right2D, spacegeom.Up2D, spacegeom.Left2D, spacegeom.Down2D}
	b := wfcrule.NewBuilder(2, directions, invert2D)
	b.Allow(stateA, []wfcrule.NeighborRule{{Direction: spacegeom.Right2D, State: stateA}})
	rule := b.Build()

	cell := stateset.NewFromStates(2, []int{stateA})
	neighbors := make([]*stateset.Set, len(directions))
	neighbors[0] = stateset.NewFromStates(2, []int{stateA})

	changed := rule.Narrow(cell, neighbors)

	assert.False(t, changed)
	assert.True(t, cell.Has(stateA))
}
