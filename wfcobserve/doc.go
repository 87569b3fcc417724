// Package wfcobserve implements §4.4: the pluggable collapse policy that
// picks a single state out of the most-constrained cell's superposition.
//
// An Observer never chooses which cell to collapse; that is the collapse
// loop's job (minimum entropy, §4.5). An Observer only chooses which state,
// among those still present, the chosen cell collapses to. Both policies
// here mutate the cell's *stateset.Set in place via Set.CollapseTo, and
// both take an explicit *rand.Rand rather than touching any global source
// of randomness, so a run is reproducible end to end given the same seed.
package wfcobserve
