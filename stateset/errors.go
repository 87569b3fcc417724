package stateset

import "errors"

// Sentinel errors for stateset operations.
var (
	// ErrLengthMismatch indicates two Sets were combined despite having
	// different K. Treated as a programming error: callers should never
	// let Sets from different scopes meet.
	ErrLengthMismatch = errors.New("stateset: operands have different lengths")

	// ErrScopeNotEntered indicates a scoped constructor (Empty, All,
	// FromStates, Len) was called outside of Scope.
	ErrScopeNotEntered = errors.New("stateset: operation requires an active Scope")
)
