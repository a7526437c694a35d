package get_available_dates

import "errors"

var (
	// ErrInternal counters could not be loaded
	ErrInternal = errors.New("get_available_dates: internal error")
)
