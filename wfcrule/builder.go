package wfcrule

import (
	"github.com/katalvlaran/wfc/spacegeom"
	"github.com/katalvlaran/wfc/stateset"
)

// NeighborRule declares that State is permitted to sit in Direction next to
// whatever state an Allow call is attached to.
type NeighborRule struct {
	Direction spacegeom.Direction
	State     int
}

type pendingAllow struct {
	state   int
	dirIdx  int
	allowed int
}

// Builder accumulates Allow declarations and compiles them into a Rule with
// their symmetric closure applied: Allow(a, [(d, b)]) also grants b the
// neighbor a in direction Invert(d), so callers only ever declare a
// constraint once.
type Builder struct {
	k          int
	directions []spacegeom.Direction
	invert     func(spacegeom.Direction) spacegeom.Direction
	pending    []pendingAllow
}

// NewBuilder returns a Builder for an alphabet of k states over directions,
// using invert to compute each declaration's symmetric counterpart.
func NewBuilder(k int, directions []spacegeom.Direction, invert func(spacegeom.Direction) spacegeom.Direction) *Builder {
	return &Builder{k: k, directions: directions, invert: invert}
}

// Allow declares that state may sit next to each of neighbors, in the given
// directions, and schedules the symmetric counterpart for each. Panics (a
// programming error, per spec §7) if a direction is not present in the
// Builder's direction table.
func (b *Builder) Allow(state int, neighbors []NeighborRule) *Builder {
	for _, n := range neighbors {
		dirIdx := spacegeom.DirectionIndex(b.directions, n.Direction)
		invIdx := spacegeom.DirectionIndex(b.directions, b.invert(n.Direction))

		b.pending = append(b.pending,
			pendingAllow{state: state, dirIdx: dirIdx, allowed: n.State},
			pendingAllow{state: n.State, dirIdx: invIdx, allowed: state},
		)
	}

	return b
}

// Build compiles every scheduled declaration into a Rule.
func (b *Builder) Build() *Rule {
	allowed := make([][]*stateset.Set, b.k)
	for s := range allowed {
		allowed[s] = make([]*stateset.Set, len(b.directions))
	}

	for _, p := range b.pending {
		if allowed[p.state][p.dirIdx] == nil {
			allowed[p.state][p.dirIdx] = stateset.NewEmpty(b.k)
		}
		allowed[p.state][p.dirIdx].Add(p.allowed)
	}

	return &Rule{k: b.k, directions: b.directions, allowed: allowed}
}
