package order

import "errors"

var (
	// ErrOrderNotFound no order with the given order id
	ErrOrderNotFound = errors.New("order.repository: order not found")

	// ErrBuildQuery failed to build SQL query
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery failed to execute SQL query
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrScanRow failed to scan query result
	ErrScanRow = errors.New("order.repository: failed to scan row")

	// ErrEncode failed to encode or decode a JSONB column
	ErrEncode = errors.New("order.repository: failed to encode column")
)
