package wfcrule

import (
	"github.com/katalvlaran/wfc/spacegeom"
	"github.com/katalvlaran/wfc/stateset"
)

// Rule is the compiled adjacency table for a fixed alphabet of K states and
// a fixed direction list. allowed[state][dirIndex] is nil when state has no
// declared neighbor constraint in that direction (None, in spec terms);
// otherwise it holds the set of states permitted to sit in that direction.
type Rule struct {
	k          int
	directions []spacegeom.Direction
	allowed    [][]*stateset.Set
}

// K returns the number of atomic states this Rule governs.
func (r *Rule) K() int {
	return r.k
}

// Allowed returns the states permitted in direction d next to state, or nil
// if state declares no constraint in that direction.
func (r *Rule) Allowed(state int, d spacegeom.Direction) *stateset.Set {
	return r.allowed[state][spacegeom.DirectionIndex(r.directions, d)]
}

// Narrow applies one pass of arc-consistency narrowing to cell given its
// neighbor superpositions, indexed the same way as r.directions. A nil
// neighbors[d] means "no neighbor exists in direction d" (an out-of-bounds
// edge of the space) and never removes a state in that direction, per the
// spec's resolution of its own open question on edge handling: absence of a
// neighbor is not evidence against any state.
//
// A present state s survives direction d only if s has at least one allowed
// neighbor state in common with neighbors[d]; a nil allowed[s][d] means s
// declares no permitted neighbor there at all, so s is removed whenever a
// real neighbor is present. Narrow returns whether cell changed.
func (r *Rule) Narrow(cell *stateset.Set, neighbors []*stateset.Set) bool {
	changed := false
	for _, s := range cell.Iter() {
		for d, neighbor := range neighbors {
			if neighbor == nil {
				continue
			}

			allowed := r.allowed[s][d]
			if allowed == nil || !allowed.HasAny(neighbor) {
				cell.Remove(s)
				changed = true

				break
			}
		}
	}

	return changed
}
