package notifier

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// EventType admin event kind
type EventType string

const (
	EventNewOrder     EventType = "NEW_ORDER"
	EventOrderUpdated EventType = "ORDER_UPDATED"
)

// Event message pushed to admin clients
type Event struct {
	ID        string       `json:"id"`
	Type      EventType    `json:"type"`
	Timestamp time.Time    `json:"timestamp"`
	Order     OrderSummary `json:"order"`
}

// OrderSummary order fields the admin list needs to refresh a row
type OrderSummary struct {
	OrderID           string    `json:"orderId"`
	CustomerName      string    `json:"customerName"`
	Phone             string    `json:"phone"`
	ServiceName       string    `json:"serviceName"`
	ServiceType       string    `json:"serviceType"`
	BookingType       string    `json:"bookingType"`
	Status            string    `json:"status"`
	PaymentStatus     string    `json:"paymentStatus"`
	TotalAmount       int64     `json:"totalAmount"`
	AdvanceAmount     int64     `json:"advanceAmount"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	CreatedAt         time.Time `json:"createdAt"`
}

func summarize(o *domain.Order) OrderSummary {
	return OrderSummary{
		OrderID:           o.OrderID,
		CustomerName:      o.Customer.Name,
		Phone:             o.Customer.Phone,
		ServiceName:       o.ServiceName,
		ServiceType:       string(o.ServiceType()),
		BookingType:       string(o.BookingType),
		Status:            string(o.Status),
		PaymentStatus:     string(o.PaymentStatus),
		TotalAmount:       o.Pricing.Total,
		AdvanceAmount:     o.Pricing.AdvanceAmount,
		EstimatedDelivery: o.EstimatedDelivery,
		CreatedAt:         o.CreatedAt,
	}
}
