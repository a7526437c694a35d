package quote_price

import "errors"

var (
	// ErrInvalidInput malformed selection
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInvalidDate tailor visit date is in the past
	ErrInvalidDate = errors.New("quote_price: invalid date")

	// ErrServiceNotFound unknown service or add-on
	ErrServiceNotFound = errors.New("quote_price: service not found")

	// ErrInternal counters could not be loaded
	ErrInternal = errors.New("quote_price: internal error")
)
