// Package stateset implements the dense bitset superposition that backs
// every cell of a wave function collapse solve.
//
// A Set is a subset of the atomic state ids [0, K), stored as a packed
// []uint64 word vector. Set algebra (Union, Intersect, Xor, AddAll,
// RemoveAll) and the hot-path HasAny test are all word-parallel. Entropy is
// defined as max(popcount-1, 0): zero for both a decided (singleton) cell
// and a contradictory (empty) cell, positive for a true superposition.
//
// K is bound for the lifetime of a solve. Most callers will use Scope to
// install K for the duration of a call tree; library code embedding the
// solver directly may instead call NewEmpty/NewAll/NewFromStates with an
// explicit length and never touch Scope at all — both styles are
// supported, and a Set constructed either way behaves identically.
//
// Scope is implemented with a single package-level value guarded by a
// mutex held for the duration of the callback, not true per-goroutine
// thread-local storage (Go has no public API for the latter). This means
// concurrent Scope calls from different goroutines serialize rather than
// running independently; sequential solves, and solves that only ever use
// the explicit-length constructors, are unaffected.
package stateset
