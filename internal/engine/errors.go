package engine

import "errors"

var (
	// ErrValidation indicates a validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrOutOfBounds indicates coordinates outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrUnknownOperation indicates a plan operation the engine cannot run.
	ErrUnknownOperation = errors.New("unknown operation")
)
