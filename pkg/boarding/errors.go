package boarding

import "errors"

var (
	// ErrInvalidConfiguration is returned when a strategy option is out of its valid range
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnknownStrategy is returned when a strategy id is not one of ListStrategies()
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrUnknownSeat is returned when an assignment is queried with a seat outside its grid
	ErrUnknownSeat = errors.New("unknown seat")

	// ErrNotGrouped is returned when a discrete group is requested from a continuous assignment (or vice versa)
	ErrNotGrouped = errors.New("assignment kind mismatch")

	// ErrInvalidAssignment is returned when a strategy produced a mapping that breaks totality or group contiguity
	ErrInvalidAssignment = errors.New("invalid assignment")
)
