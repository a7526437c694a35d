package models

import (
	"errors"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

var (
	// ErrInvalidStatus unknown order status
	ErrInvalidStatus = errors.New("invalid order status")
)

// Request models

// ListOrdersRequest admin order list query
type ListOrdersRequest struct {
	Status *string `json:"status,omitempty"`
	Limit  int     `json:"limit"`
	Skip   int     `json:"skip"`
}

// UpdateStatusRequest admin status change
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// Response models

// PricingResponse price breakdown
type PricingResponse struct {
	BasePrice       int64 `json:"basePrice"`
	AddOnsTotal     int64 `json:"addOnsTotal"`
	UrgentSurcharge int64 `json:"urgentSurcharge"`
	Total           int64 `json:"total"`
	AdvanceAmount   int64 `json:"advanceAmount"`
	BalanceAmount   int64 `json:"balanceAmount"`
	RequiresAdvance bool  `json:"requiresAdvance"`
}

// AddOnResponse priced add-on
type AddOnResponse struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CustomizationResponse design choices of a custom order
type CustomizationResponse struct {
	NeckDesign  string `json:"neckDesign,omitempty"`
	SleeveStyle string `json:"sleeveStyle,omitempty"`
	Fit         string `json:"fit,omitempty"`
	Remarks     string `json:"remarks,omitempty"`
}

// StatusChangeResponse status history entry
type StatusChangeResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderResponse order as returned by the API
type OrderResponse struct {
	OrderID           string                 `json:"orderId"`
	CustomerName      string                 `json:"customerName"`
	Phone             string                 `json:"phone"`
	Address           string                 `json:"address"`
	ServiceType       string                 `json:"serviceType"`
	ServiceID         string                 `json:"serviceId"`
	ServiceName       string                 `json:"serviceName"`
	Customization     *CustomizationResponse `json:"customization,omitempty"`
	AddOns            []AddOnResponse        `json:"addOns"`
	BookingType       string                 `json:"bookingType"`
	MeasurementMethod string                 `json:"measurementMethod"`
	Measurements      map[string]string      `json:"measurements,omitempty"`
	TailorVisitDate   *string                `json:"tailorVisitDate,omitempty"` // "2025-03-12"

	ProcessingStartDate string    `json:"processingStartDate"` // "2025-03-13"
	EstimatedDelivery   time.Time `json:"estimatedDelivery"`

	Pricing       PricingResponse        `json:"pricing"`
	Status        string                 `json:"status"`
	PaymentStatus string                 `json:"paymentStatus"`
	StatusHistory []StatusChangeResponse `json:"statusHistory"`
	Notes         *string                `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// OrderListResponse page of orders
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// StatsResponse admin dashboard counters for the current day
type StatsResponse struct {
	TodayOrders      int   `json:"todayOrders"`
	PendingOrders    int   `json:"pendingOrders"`
	InProgressOrders int   `json:"inProgressOrders"`
	TodayRevenue     int64 `json:"todayRevenue"`
}

// Converters

// FromDomainOrder converts a domain order to the API shape
func FromDomainOrder(o *domain.Order) OrderResponse {
	resp := OrderResponse{
		OrderID:             o.OrderID,
		CustomerName:        o.Customer.Name,
		Phone:               o.Customer.Phone,
		Address:             o.Customer.Address,
		ServiceName:         o.ServiceName,
		AddOns:              make([]AddOnResponse, 0, len(o.AddOns)),
		BookingType:         string(o.BookingType),
		ProcessingStartDate: o.ProcessingStartDate.Format(domain.DateFormat),
		EstimatedDelivery:   o.EstimatedDelivery,
		Pricing:             FromDomainPricing(o.Pricing),
		Status:              string(o.Status),
		PaymentStatus:       string(o.PaymentStatus),
		StatusHistory:       make([]StatusChangeResponse, 0, len(o.StatusHistory)),
		Notes:               o.Notes,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}

	switch s := o.Selection.(type) {
	case domain.CatalogSelection:
		resp.ServiceType = string(domain.ServiceTypeBooking)
		resp.ServiceID = s.ServiceID
	case domain.CustomSelection:
		resp.ServiceType = string(domain.ServiceTypeCustom)
		resp.ServiceID = s.BaseServiceID
		resp.Customization = &CustomizationResponse{
			NeckDesign:  s.Customization.NeckDesign,
			SleeveStyle: s.Customization.SleeveStyle,
			Fit:         s.Customization.Fit,
			Remarks:     s.Customization.Remarks,
		}
	}

	switch m := o.Measurement.(type) {
	case domain.SelfMeasurement:
		resp.MeasurementMethod = string(domain.MeasurementSelf)
		resp.Measurements = m.Values
	case domain.TailorVisit:
		resp.MeasurementMethod = string(domain.MeasurementTailor)
		visit := m.VisitDate.Format(domain.DateFormat)
		resp.TailorVisitDate = &visit
	}

	for _, a := range o.AddOns {
		resp.AddOns = append(resp.AddOns, AddOnResponse{Name: a.Name, Price: a.Price})
	}
	for _, h := range o.StatusHistory {
		resp.StatusHistory = append(resp.StatusHistory, StatusChangeResponse{
			Status:    string(h.Status),
			Note:      h.Note,
			Timestamp: h.Timestamp,
		})
	}

	return resp
}

// FromDomainPricing converts a price breakdown to the API shape
func FromDomainPricing(p domain.PricingResult) PricingResponse {
	return PricingResponse{
		BasePrice:       p.BasePrice,
		AddOnsTotal:     p.AddOnsTotal,
		UrgentSurcharge: p.UrgentSurcharge,
		Total:           p.Total,
		AdvanceAmount:   p.AdvanceAmount,
		BalanceAmount:   p.BalanceAmount,
		RequiresAdvance: p.RequiresAdvance,
	}
}

// FromDomainOrderList converts a page of orders
func FromDomainOrderList(orders []*domain.Order, total int) *OrderListResponse {
	resp := &OrderListResponse{
		Orders: make([]OrderResponse, 0, len(orders)),
		Total:  total,
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, FromDomainOrder(o))
	}
	return resp
}

// FromDomainStats converts dashboard counters
func FromDomainStats(s *domain.OrderStats) *StatsResponse {
	return &StatsResponse{
		TodayOrders:      s.TodayOrders,
		PendingOrders:    s.PendingOrders,
		InProgressOrders: s.InProgressOrders,
		TodayRevenue:     s.TodayRevenue,
	}
}

// ToDomainOrderStatus validates and converts a status string
func ToDomainOrderStatus(status string) (domain.OrderStatus, error) {
	s := domain.OrderStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
