package get_available_dates

import (
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// Response normal capacity of the booking window
type Response struct {
	MinDaysAhead int
	MaxPerDay    int
	// FirstAvailableDate nil when every date of the window is full
	FirstAvailableDate *time.Time
	Dates              []domain.DateAvailability
	// UrgentDates lead time at the reference hour and urgent capacity per date
	UrgentDates []domain.UrgentDateAvailability
}
