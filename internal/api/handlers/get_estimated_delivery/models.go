package get_estimated_delivery

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	estimateDelivery "github.com/sliques/SLQ-OrderService/internal/usecase/estimate_delivery"
)

// EstimatedDeliveryResponse HTTP response model
type EstimatedDeliveryResponse struct {
	ProcessingStartDate   string    `json:"processingStartDate"` // "2025-03-11"
	EstimatedDelivery     time.Time `json:"estimatedDelivery"`
	MaxPerDay             int       `json:"maxPerDay"`
	MinDaysFromProcessing int       `json:"minDaysFromProcessing"`
	Shifted               bool      `json:"shifted"`
}

// ToUseCaseRequest parses the query parameters. Empty values fall back to the use case defaults.
func ToUseCaseRequest(processingStart, bookingType string) (*estimateDelivery.Request, error) {
	req := &estimateDelivery.Request{BookingType: domain.BookingType(bookingType)}
	if processingStart != "" {
		start, err := time.Parse(domain.DateFormat, processingStart)
		if err != nil {
			return nil, err
		}
		req.ProcessingStart = &start
	}
	return req, nil
}

func FromUseCaseResponse(resp *estimateDelivery.Response) EstimatedDeliveryResponse {
	return EstimatedDeliveryResponse{
		ProcessingStartDate:   resp.ProcessingStartDate.Format(domain.DateFormat),
		EstimatedDelivery:     resp.EstimatedDelivery,
		MaxPerDay:             resp.MaxPerDay,
		MinDaysFromProcessing: resp.MinDaysFromProcessing,
		Shifted:               resp.Shifted,
	}
}
