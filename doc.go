// Package wfc is a Wave Function Collapse engine: it turns a small set of
// local adjacency rules into a fully resolved grid by repeatedly collapsing
// the most-constrained cell and propagating that choice outward until
// nothing is left to decide, or a contradiction is found.
//
// What is wfc?
//
//	A thread-light, dependency-minimal constraint-propagation core that
//	brings together:
//
//	  • stateset    — dense bitset superpositions over a fixed alphabet
//	  • spacegeom   — a generic spatial-domain seam (Grid2D, Grid3D, ...)
//	  • wfcrule     — compiled adjacency tables with symmetric closure
//	  • wfcobserve  — pluggable collapse policies (uniform, weighted)
//	  • wfccollapse — the collapse loop: min-entropy selection + propagation
//	  • wfcpattern  — an overlapping-pattern extractor for sample-driven rules
//
// Why choose wfc?
//
//   - Deterministic  — every random choice flows through a caller-supplied
//     *rand.Rand; no package-level source of randomness anywhere
//   - Honest about failure — contradictions are an ordinary error value,
//     never a panic; only genuine programmer mistakes panic
//   - Generic over space — the same collapse loop drives a 2D grid, a 3D
//     grid, or any future Space implementation without modification
//
// This package is a single solve attempt, not a generator: it holds no
// backtracking, no incremental re-solve, and no distributed execution.
// Callers needing any of those build them on top, one Collapse call at a
// time.
package wfc
