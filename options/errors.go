package options

import "errors"

var (
	// ErrConfiguration marks contradictory addressing/header settings. It is detected
	// before any line is read and is fatal to the run.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrInvalidArgument marks malformed filters, non-positive capacities and nil inputs.
	ErrInvalidArgument = errors.New("invalid argument")
)
