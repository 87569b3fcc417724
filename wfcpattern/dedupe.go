package wfcpattern

import (
	"fmt"
	"strings"
)

// windowKey renders cells into a map key, encoding presence so an absent
// border cell never collides with a present cell holding T's zero value.
func windowKey[T Tile[T]](cells []Option[T]) string {
	var sb strings.Builder
	for _, c := range cells {
		if c.Present {
			fmt.Fprintf(&sb, "1:%v\x00", c.Value)
		} else {
			sb.WriteString("0:\x00")
		}
	}

	return sb.String()
}

// patternInfo is one deduplicated pattern: its flattened window cells (some
// possibly absent, for a border-sampled window), a stable state id, and how
// many raw window occurrences (including symmetry images) mapped to it.
type patternInfo[T Tile[T]] struct {
	id     int
	cells  []Option[T]
	weight int
}

// dedupe collapses a stream of windows into unique patterns in first-seen
// order, counting repeats into weight.
func dedupe[T Tile[T]](windows [][]Option[T]) []*patternInfo[T] {
	index := make(map[string]*patternInfo[T], len(windows))
	order := make([]*patternInfo[T], 0, len(windows))

	for _, w := range windows {
		key := windowKey(w)
		if p, ok := index[key]; ok {
			p.weight++

			continue
		}
		p := &patternInfo[T]{id: len(order), cells: w, weight: 1}
		index[key] = p
		order = append(order, p)
	}

	return order
}
