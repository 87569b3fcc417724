// Package wfccollapse implements §4.5: the collapse loop itself. Collapse
// repeatedly selects the cell with minimum positive entropy, breaking ties
// uniformly at random, hands it to an Observer to pick a single surviving
// state, and then propagates that change outward with a breadth-first
// worklist until no further cell changes or a contradiction is found.
//
// There is no backtracking and no parallel or incremental variant: a single
// call to Collapse runs one solve attempt to completion or to its first
// contradiction, matching the spec's explicit non-goals. Determinism is a
// pure function of the supplied *rand.Rand: two calls seeded identically,
// against identical inputs, visit cells and make choices in the same order.
package wfccollapse
