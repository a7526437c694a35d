package orders

import "errors"

var (
	// ErrOrderNotFound no order with the given order id
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidInput malformed filter or status
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidStatusTransition the order no longer accepts status changes
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrInternal storage failure
	ErrInternal = errors.New("service: internal error")
)
