package estimate_delivery

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// Request delivery estimate inputs
type Request struct {
	// ProcessingStart calendar date work begins, tomorrow when nil
	ProcessingStart *time.Time
	// BookingType normal when empty
	BookingType domain.BookingType
}

// Response delivery estimate
type Response struct {
	ProcessingStartDate   time.Time
	EstimatedDelivery     time.Time
	MaxPerDay             int
	MinDaysFromProcessing int
	// Shifted the estimate moved past fully booked dates
	Shifted bool
}
