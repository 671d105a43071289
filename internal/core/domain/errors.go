package domain

import "errors"

// Error categories surfaced by every operation. Callers match them with
// errors.Is; the wrapped message carries the detail.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict")
	ErrNotFound          = errors.New("not found")
	ErrDependencyFailure = errors.New("dependency failure")
)
