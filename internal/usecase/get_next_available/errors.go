package get_next_available

import "errors"

var (
	// ErrInternal counters could not be loaded
	ErrInternal = errors.New("get_next_available: internal error")
)
