package domain

import "errors"

var (
	// ErrInvalidRules booking rules contain a non-positive cap, lead time or out-of-range percent
	ErrInvalidRules = errors.New("domain: invalid booking rules")

	// ErrInvalidOrder order fields are missing or inconsistent with its variant
	ErrInvalidOrder = errors.New("domain: invalid order")

	// ErrServiceNotFound unknown catalog service id
	ErrServiceNotFound = errors.New("domain: service not found")

	// ErrAddOnNotFound unknown add-on id
	ErrAddOnNotFound = errors.New("domain: add-on not found")

	// ErrInvalidStatusTransition status change not allowed from the current status
	ErrInvalidStatusTransition = errors.New("domain: invalid status transition")
)
