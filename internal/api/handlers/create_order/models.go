package create_order

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/internal/service/orders/models"
	createOrder "github.com/sliques/SLQ-OrderService/internal/usecase/create_order"
)

// CustomizationRequest design choices of a custom order
type CustomizationRequest struct {
	NeckDesign  string `json:"neckDesign"`
	SleeveStyle string `json:"sleeveStyle"`
	Fit         string `json:"fit"`
	Remarks     string `json:"remarks"`
}

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	CustomerName      string                `json:"customerName"`
	Phone             string                `json:"phone"`
	Address           string                `json:"address"`
	ServiceType       string                `json:"serviceType"` // booking | custom
	ServiceID         string                `json:"serviceId"`
	Customization     *CustomizationRequest `json:"customization,omitempty"`
	AddOns            []string              `json:"addOns,omitempty"` // add-on ids
	BookingType       string                `json:"bookingType"`       // normal | urgent
	MeasurementMethod string                `json:"measurementMethod"` // self | tailor
	Measurements      map[string]string     `json:"measurements,omitempty"`
	TailorVisitDate   *string               `json:"tailorVisitDate,omitempty"` // "2025-03-12"
	Notes             *string               `json:"notes,omitempty"`
}

// CreateOrderResponse HTTP response model
type CreateOrderResponse struct {
	models.OrderResponse
	DeliveryShifted bool `json:"deliveryShifted"`
}

// ToUseCaseRequest converts the HTTP request, parsing the visit date
func (r *CreateOrderRequest) ToUseCaseRequest() (*createOrder.Request, error) {
	req := &createOrder.Request{
		CustomerName:      r.CustomerName,
		Phone:             r.Phone,
		Address:           r.Address,
		ServiceType:       domain.ServiceType(r.ServiceType),
		ServiceID:         r.ServiceID,
		AddOnIDs:          r.AddOns,
		BookingType:       domain.BookingType(r.BookingType),
		MeasurementMethod: domain.MeasurementMethod(r.MeasurementMethod),
		Measurements:      r.Measurements,
		Notes:             r.Notes,
	}

	if r.Customization != nil {
		req.Customization = &domain.Customization{
			NeckDesign:  r.Customization.NeckDesign,
			SleeveStyle: r.Customization.SleeveStyle,
			Fit:         r.Customization.Fit,
			Remarks:     r.Customization.Remarks,
		}
	}

	if r.TailorVisitDate != nil && *r.TailorVisitDate != "" {
		visit, err := time.Parse(domain.DateFormat, *r.TailorVisitDate)
		if err != nil {
			return nil, err
		}
		req.TailorVisitDate = &visit
	}

	return req, nil
}

// FromUseCaseResponse converts the created order
func FromUseCaseResponse(resp *createOrder.Response) CreateOrderResponse {
	return CreateOrderResponse{
		OrderResponse:   models.FromDomainOrder(resp.Order),
		DeliveryShifted: resp.DeliveryShifted,
	}
}
