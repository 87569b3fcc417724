package stateset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfc/stateset"
)

func TestEntropy_Boundaries(t *testing.T) {
	empty := stateset.NewEmpty(5)
	assert.Equal(t, 0, empty.Entropy(), "empty set has zero entropy")

	single := stateset.NewFromStates(5, []int{2})
	assert.Equal(t, 0, single.Entropy(), "singleton has zero entropy")

	full := stateset.NewAll(5)
	assert.Equal(t, 4, full.Entropy(), "full set of K=5 has entropy K-1")
}

func TestAddRemoveHas(t *testing.T) {
	s := stateset.NewEmpty(10)
	assert.False(t, s.Has(3))
	s.Add(3)
	assert.True(t, s.Has(3))
	s.Remove(3)
	assert.False(t, s.Has(3))
}

func TestSetAlgebra(t *testing.T) {
	a := stateset.NewFromStates(8, []int{0, 1, 2})
	b := stateset.NewFromStates(8, []int{2, 3, 4})

	union := a.Union(b)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, union.Iter())

	inter := a.Intersect(b)
	assert.Equal(t, []int{2}, inter.Iter())

	xor := a.Xor(b)
	assert.Equal(t, []int{0, 1, 3, 4}, xor.Iter())

	assert.True(t, a.HasAny(b), "a and b share state 2")

	c := stateset.NewFromStates(8, []int{5, 6})
	assert.False(t, a.HasAny(c), "a and c share nothing")
}

func TestAddAllRemoveAll(t *testing.T) {
	a := stateset.NewFromStates(6, []int{0, 1})
	b := stateset.NewFromStates(6, []int{1, 2})

	a.AddAll(b)
	assert.Equal(t, []int{0, 1, 2}, a.Iter())

	a.RemoveAll(b)
	assert.Equal(t, []int{0}, a.Iter())
}

func TestRetain(t *testing.T) {
	s := stateset.NewAll(6)
	s.Retain(func(state int) bool { return state%2 == 0 })
	assert.Equal(t, []int{0, 2, 4}, s.Iter())
}

func TestCloneIndependence(t *testing.T) {
	a := stateset.NewFromStates(4, []int{1})
	b := a.Clone()
	b.Add(2)

	assert.False(t, a.Has(2), "mutating the clone must not affect the original")
	assert.True(t, b.Has(2))
}

func TestEqual(t *testing.T) {
	a := stateset.NewFromStates(4, []int{1, 2})
	b := stateset.NewFromStates(4, []int{2, 1})
	c := stateset.NewFromStates(4, []int{1})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestLengthMismatchPanics(t *testing.T) {
	a := stateset.NewEmpty(4)
	b := stateset.NewEmpty(8)

	assert.PanicsWithError(t, stateset.ErrLengthMismatch.Error(), func() {
		a.HasAny(b)
	})
}

func TestWordBoundaryCrossing(t *testing.T) {
	// 130 states crosses three 64-bit words; exercise the tail mask.
	full := stateset.NewAll(130)
	require.Equal(t, 129, full.Entropy())
	assert.Len(t, full.Iter(), 130)
	assert.True(t, full.Has(129))
	assert.True(t, full.Has(0))
}

func TestIsEmpty(t *testing.T) {
	empty := stateset.NewEmpty(4)
	assert.True(t, empty.IsEmpty())

	single := stateset.NewFromStates(4, []int{1})
	assert.False(t, single.IsEmpty())

	single.Remove(1)
	assert.True(t, single.IsEmpty())
}

func TestCollapseTo(t *testing.T) {
	s := stateset.NewAll(5)
	s.CollapseTo(2)

	assert.Equal(t, []int{2}, s.Iter())
	assert.Equal(t, 0, s.Entropy())
}

func TestScope(t *testing.T) {
	stateset.Scope(3, func() {
		assert.Equal(t, 3, stateset.Len())
		all := stateset.All()
		assert.Equal(t, 3, all.Len())

		stateset.Scope(5, func() {
			assert.Equal(t, 5, stateset.Len())
		})

		assert.Equal(t, 3, stateset.Len(), "outer scope restored after inner scope exits")
	})

	assert.Panics(t, func() { stateset.Len() }, "Len outside any Scope must panic")
}
