package create_order

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// Request order submission from the booking flow
type Request struct {
	CustomerName string
	Phone        string
	Address      string

	ServiceType   domain.ServiceType // booking | custom
	ServiceID     string             // catalog service, or base outfit of a custom order
	Customization *domain.Customization
	AddOnIDs      []string

	BookingType       domain.BookingType
	MeasurementMethod domain.MeasurementMethod
	Measurements      map[string]string // self measurement only
	TailorVisitDate   *time.Time        // tailor measurement only, calendar date

	Notes *string
}

// Response created order
type Response struct {
	Order *domain.Order
	// DeliveryShifted the estimate moved past fully booked dates
	DeliveryShifted bool
}
