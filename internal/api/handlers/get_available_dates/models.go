package get_available_dates

import (
	"github.com/sliques/SLQ-OrderService/internal/domain"
	getAvailableDates "github.com/sliques/SLQ-OrderService/internal/usecase/get_available_dates"
)

// DateResponse capacity of one date
type DateResponse struct {
	Date           string `json:"date"` // "2025-03-17"
	RemainingSlots int    `json:"remainingSlots"`
	IsFull         bool   `json:"isFull"`
}

// UrgentDateResponse urgent bookability of one date
type UrgentDateResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	MinDaysAhead       int                  `json:"minDaysAhead"`
	MaxPerDay          int                  `json:"maxPerDay"`
	FirstAvailableDate *string              `json:"firstAvailableDate"`
	Dates              []DateResponse       `json:"dates"`
	UrgentDates        []UrgentDateResponse `json:"urgentDates"`
}

func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	out := &AvailableDatesResponse{
		MinDaysAhead: resp.MinDaysAhead,
		MaxPerDay:    resp.MaxPerDay,
		Dates:        make([]DateResponse, 0, len(resp.Dates)),
		UrgentDates:  make([]UrgentDateResponse, 0, len(resp.UrgentDates)),
	}
	if resp.FirstAvailableDate != nil {
		first := resp.FirstAvailableDate.Format(domain.DateFormat)
		out.FirstAvailableDate = &first
	}
	for _, d := range resp.Dates {
		out.Dates = append(out.Dates, DateResponse{
			Date:           d.Date.Format(domain.DateFormat),
			RemainingSlots: d.RemainingSlots,
			IsFull:         d.IsFull,
		})
	}
	for _, d := range resp.UrgentDates {
		out.UrgentDates = append(out.UrgentDates, UrgentDateResponse{
			Date:      d.Date.Format(domain.DateFormat),
			Available: d.Available,
		})
	}
	return out
}
