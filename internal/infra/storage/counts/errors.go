package counts

import "errors"

var (
	// ErrCapacityExceeded the date already holds the maximum number of orders of that type
	ErrCapacityExceeded = errors.New("counts.repository: capacity exceeded")

	// ErrInvalidBookingType unknown booking type column
	ErrInvalidBookingType = errors.New("counts.repository: invalid booking type")

	// ErrBuildQuery failed to build SQL query
	ErrBuildQuery = errors.New("counts.repository: failed to build query")

	// ErrExecQuery failed to execute SQL query
	ErrExecQuery = errors.New("counts.repository: failed to execute query")

	// ErrScanRow failed to scan query result
	ErrScanRow = errors.New("counts.repository: failed to scan row")
)
