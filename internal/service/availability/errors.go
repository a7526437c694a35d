package availability

import "errors"

var (
	// ErrInvalidRange from is after to
	ErrInvalidRange = errors.New("availability: invalid date range")

	// ErrInternal counters could not be loaded
	ErrInternal = errors.New("availability: internal error")
)
