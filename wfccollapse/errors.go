package wfccollapse

import "fmt"

// ContradictionError reports that narrowing emptied a cell's superposition.
// Per spec §7 this is a non-fatal outcome of ordinary solving, not a
// programming error: Collapse returns it as an ordinary error value rather
// than panicking, so callers can count or retry at a higher level.
type ContradictionError[C any] struct {
	Coordinate C
}

func (e *ContradictionError[C]) Error() string {
	return fmt.Sprintf("wfccollapse: contradiction at %v", e.Coordinate)
}
