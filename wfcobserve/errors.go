package wfcobserve

import "errors"

// ErrEmptyObserve is a programming-error panic (spec §7): a cell must never
// be observed once its superposition has already collapsed to nothing.
var ErrEmptyObserve = errors.New("wfcobserve: cannot observe an empty superposition")
