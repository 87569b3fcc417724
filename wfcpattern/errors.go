package wfcpattern

import "errors"

// ErrInvalidWindowSize is a programming-error panic (spec §7): a window
// must be a positive odd number of cells so it has a well-defined center
// cell for Center and DecodeSuperposition.
var ErrInvalidWindowSize = errors.New("wfcpattern: window size must be a positive odd number")

// ErrUnknownAxis is a programming-error panic (spec §7): WithFlipAxes was
// given an axis value this extractor does not recognize.
var ErrUnknownAxis = errors.New("wfcpattern: unknown flip axis")

// ErrCenterAbsent would indicate a bug in window construction: a window's
// own center cell, sampled at zero net offset from its anchor, must always
// be present.
var ErrCenterAbsent = errors.New("wfcpattern: pattern center is unexpectedly absent")
