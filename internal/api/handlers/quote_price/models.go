package quote_price

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/internal/service/orders/models"
	quotePrice "github.com/sliques/SLQ-OrderService/internal/usecase/quote_price"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	ServiceType       string   `json:"serviceType"`
	ServiceID         string   `json:"serviceId"`
	AddOns            []string `json:"addOns,omitempty"`
	BookingType       string   `json:"bookingType"`
	MeasurementMethod string   `json:"measurementMethod"`
	TailorVisitDate   *string  `json:"tailorVisitDate,omitempty"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	ServiceName         string                 `json:"serviceName"`
	AddOns              []models.AddOnResponse `json:"addOns"`
	Pricing             models.PricingResponse `json:"pricing"`
	ProcessingStartDate string                 `json:"processingStartDate"`
	EstimatedDelivery   time.Time              `json:"estimatedDelivery"`
	DeliveryShifted     bool                   `json:"deliveryShifted"`
}

func (r *QuoteRequest) ToUseCaseRequest() (*quotePrice.Request, error) {
	req := &quotePrice.Request{
		ServiceType:       domain.ServiceType(r.ServiceType),
		ServiceID:         r.ServiceID,
		AddOnIDs:          r.AddOns,
		BookingType:       domain.BookingType(r.BookingType),
		MeasurementMethod: domain.MeasurementMethod(r.MeasurementMethod),
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

func FromUseCaseResponse(resp *quotePrice.Response) QuoteResponse {
	addOns := make([]models.AddOnResponse, 0, len(resp.AddOns))
	for _, a := range resp.AddOns {
		addOns = append(addOns, models.AddOnResponse{Name: a.Name, Price: a.Price})
	}
	return QuoteResponse{
		ServiceName:         resp.ServiceName,
		AddOns:              addOns,
		Pricing:             models.FromDomainPricing(resp.Pricing),
		ProcessingStartDate: resp.ProcessingStartDate.Format(domain.DateFormat),
		EstimatedDelivery:   resp.EstimatedDelivery,
		DeliveryShifted:     resp.DeliveryShifted,
	}
}
