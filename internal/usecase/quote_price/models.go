package quote_price

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// Request selection to quote, the same fields the order form submits minus the customer
type Request struct {
	ServiceType       domain.ServiceType
	ServiceID         string
	AddOnIDs          []string
	BookingType       domain.BookingType
	MeasurementMethod domain.MeasurementMethod
	TailorVisitDate   *time.Time
}

// Response price breakdown and schedule preview
type Response struct {
	ServiceName         string
	AddOns              []domain.AddOn
	Pricing             domain.PricingResult
	ProcessingStartDate time.Time
	EstimatedDelivery   time.Time
	DeliveryShifted     bool
}
