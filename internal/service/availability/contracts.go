package availability

import (
	"context"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// CounterRepository per-date booking counters in the database
type CounterRepository interface {
	GetRange(ctx context.Context, from, to time.Time) (domain.BookingCounts, error)
}

// Cache cached counter windows. Set only stores when no invalidation happened since generation was read.
type Cache interface {
	Get(ctx context.Context, from, to time.Time) (domain.BookingCounts, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, from, to time.Time, generation int64, counts domain.BookingCounts) error
}

// Logger logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
