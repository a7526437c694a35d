package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingType urgency tier of an order
type BookingType string

const (
	BookingNormal BookingType = "normal"
	BookingUrgent BookingType = "urgent"
)

func (t BookingType) IsValid() bool {
	return t == BookingNormal || t == BookingUrgent
}

func (t BookingType) IsUrgent() bool {
	return t == BookingUrgent
}

// ServiceType catalog booking or custom creation
type ServiceType string

const (
	ServiceTypeBooking ServiceType = "booking"
	ServiceTypeCustom  ServiceType = "custom"
)

// MeasurementMethod how measurements are taken
type MeasurementMethod string

const (
	MeasurementSelf   MeasurementMethod = "self"
	MeasurementTailor MeasurementMethod = "tailor"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPickupAwaited  OrderStatus = "pickup-awaited"
	StatusFabricReceived OrderStatus = "fabric-received"
	StatusProcessing     OrderStatus = "processing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPickupAwaited, StatusFabricReceived, StatusProcessing, StatusReady,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentAdvancePaid PaymentStatus = "advance-paid"
	PaymentPaid        PaymentStatus = "paid"
)

// Customer contact details, opaque to scheduling and pricing
type Customer struct {
	Name    string
	Phone   string
	Address string
}

// Customization design choices of a custom order
type Customization struct {
	NeckDesign  string
	SleeveStyle string
	Fit         string
	Remarks     string
}

// Selection what is being stitched. Either CatalogSelection or CustomSelection.
type Selection interface {
	ServiceType() ServiceType
	isSelection()
}

// CatalogSelection a service picked from the catalog as is
type CatalogSelection struct {
	ServiceID string
}

func (CatalogSelection) ServiceType() ServiceType { return ServiceTypeBooking }
func (CatalogSelection) isSelection()             {}

// CustomSelection an outfit built in the customizer
type CustomSelection struct {
	BaseServiceID string
	Customization Customization
}

func (CustomSelection) ServiceType() ServiceType { return ServiceTypeCustom }
func (CustomSelection) isSelection()             {}

// Measurement how the tailor gets the measurements. Either SelfMeasurement or TailorVisit.
type Measurement interface {
	Method() MeasurementMethod
	isMeasurement()
}

// SelfMeasurement measurements supplied by the customer, keyed by name (bust, waist, ...)
type SelfMeasurement struct {
	Values map[string]string
}

func (SelfMeasurement) Method() MeasurementMethod { return MeasurementSelf }
func (SelfMeasurement) isMeasurement()            {}

// TailorVisit the tailor measures the customer at home on VisitDate
type TailorVisit struct {
	VisitDate time.Time
}

func (TailorVisit) Method() MeasurementMethod { return MeasurementTailor }
func (TailorVisit) isMeasurement()            {}

// StatusChange one entry of the order status history
type StatusChange struct {
	Status    OrderStatus `json:"status"`
	Note      string      `json:"note,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Order represents a persisted customer order
type Order struct {
	ID          int64
	OrderID     string // SLQ1231, SLQ1232, ...
	Customer    Customer
	Selection   Selection
	ServiceName string
	AddOns      []AddOn
	BookingType BookingType
	Measurement Measurement

	ProcessingStartDate time.Time
	EstimatedDelivery   time.Time
	SlotDate            time.Time // delivery date whose counter this order occupies

	Pricing       PricingResult
	Status        OrderStatus
	PaymentStatus PaymentStatus
	StatusHistory []StatusChange
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceType returns the type of the selection
func (o *Order) ServiceType() ServiceType {
	return o.Selection.ServiceType()
}

// MeasurementMethod returns the method of the measurement variant
func (o *Order) MeasurementMethod() MeasurementMethod {
	return o.Measurement.Method()
}

// TailorVisitDate returns the visit date for tailor measured orders, nil otherwise
func (o *Order) TailorVisitDate() *time.Time {
	if visit, ok := o.Measurement.(TailorVisit); ok {
		d := visit.VisitDate
		return &d
	}
	return nil
}

// IsCancelled returns true if the order has been cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}

// CanChangeStatus returns true if the order still accepts status updates
func (o *Order) CanChangeStatus() bool {
	return o.Status != StatusCancelled
}

// OrderParams inputs of NewOrder
type OrderParams struct {
	Customer            Customer
	Selection           Selection
	ServiceName         string
	AddOns              []AddOn
	BookingType         BookingType
	Measurement         Measurement
	ProcessingStartDate time.Time
	EstimatedDelivery   time.Time
	SlotDate            time.Time
	Pricing             PricingResult
	Notes               *string
	CreatedAt           time.Time
}

// NewOrder builds a new order in pickup-awaited status.
// Every variant is checked for the fields it needs.
func NewOrder(orderID string, p OrderParams) (*Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("%w: orderID is required", ErrInvalidOrder)
	}
	if err := validateCustomer(p.Customer); err != nil {
		return nil, err
	}
	if !p.BookingType.IsValid() {
		return nil, fmt.Errorf("%w: unknown booking type %q", ErrInvalidOrder, p.BookingType)
	}

	switch s := p.Selection.(type) {
	case CatalogSelection:
		if s.ServiceID == "" {
			return nil, fmt.Errorf("%w: serviceId is required for booking orders", ErrInvalidOrder)
		}
	case CustomSelection:
		if s.BaseServiceID == "" {
			return nil, fmt.Errorf("%w: base outfit is required for custom orders", ErrInvalidOrder)
		}
	default:
		return nil, fmt.Errorf("%w: service selection is required", ErrInvalidOrder)
	}

	switch m := p.Measurement.(type) {
	case SelfMeasurement:
	case TailorVisit:
		if m.VisitDate.IsZero() {
			return nil, fmt.Errorf("%w: tailorVisitDate is required for tailor measurement", ErrInvalidOrder)
		}
	default:
		return nil, fmt.Errorf("%w: measurement method is required", ErrInvalidOrder)
	}

	if p.ProcessingStartDate.IsZero() || p.EstimatedDelivery.IsZero() || p.SlotDate.IsZero() {
		return nil, fmt.Errorf("%w: schedule dates are required", ErrInvalidOrder)
	}
	if p.Notes != nil && len(*p.Notes) > MaxNotesLength {
		return nil, fmt.Errorf("%w: notes longer than %d characters", ErrInvalidOrder, MaxNotesLength)
	}

	return &Order{
		OrderID:             orderID,
		Customer:            p.Customer,
		Selection:           p.Selection,
		ServiceName:         p.ServiceName,
		AddOns:              p.AddOns,
		BookingType:         p.BookingType,
		Measurement:         p.Measurement,
		ProcessingStartDate: p.ProcessingStartDate,
		EstimatedDelivery:   p.EstimatedDelivery,
		SlotDate:            p.SlotDate,
		Pricing:             p.Pricing,
		Status:              StatusPickupAwaited,
		PaymentStatus:       PaymentPending,
		StatusHistory: []StatusChange{
			{Status: StatusPickupAwaited, Note: "Order placed", Timestamp: p.CreatedAt},
		},
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.CreatedAt,
	}, nil
}

func validateCustomer(c Customer) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidOrder)
	}
	if len(name) > MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName longer than %d characters", ErrInvalidOrder, MaxCustomerNameLength)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidOrder)
	}
	if strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidOrder)
	}
	return nil
}

// FormatOrderID formats a sequence number as an order id (1231 -> SLQ1231)
func FormatOrderID(seq int64) string {
	return fmt.Sprintf("%s%04d", OrderIDPrefix, seq)
}
