package create_order

import "errors"

var (
	// ErrInvalidInput missing or malformed request fields
	ErrInvalidInput = errors.New("create_order: invalid input data")

	// ErrInvalidDate tailor visit date is in the past
	ErrInvalidDate = errors.New("create_order: invalid date")

	// ErrServiceNotFound unknown service or add-on
	ErrServiceNotFound = errors.New("create_order: service not found")

	// ErrCapacityExceeded the delivery date filled up before the order was committed
	ErrCapacityExceeded = errors.New("create_order: delivery date is fully booked")

	// ErrInternal storage or unexpected failure
	ErrInternal = errors.New("create_order: internal error")
)
