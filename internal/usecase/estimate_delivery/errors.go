package estimate_delivery

import "errors"

var (
	// ErrInvalidInput unknown booking type
	ErrInvalidInput = errors.New("estimate_delivery: invalid input data")

	// ErrInternal counters could not be loaded
	ErrInternal = errors.New("estimate_delivery: internal error")
)
