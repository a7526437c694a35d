package get_next_available

import (
	"context"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// CountsReader booking counters of a date window
type CountsReader interface {
	Counts(ctx context.Context, from, to time.Time) (domain.BookingCounts, error)
}

// TimeProvider source of the current time
type TimeProvider interface {
	Now() time.Time
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
