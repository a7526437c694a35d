package create_order

import (
	"context"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// OrderRepository orders storage
type OrderRepository interface {
	NextOrderNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// CounterStore per-date booking counters
type CounterStore interface {
	GetRange(ctx context.Context, from, to time.Time) (domain.BookingCounts, error)
	Reserve(ctx context.Context, date time.Time, bookingType domain.BookingType, limit int) (int, error)
}

// AvailabilityCache cached counters dropped after every new order
type AvailabilityCache interface {
	Invalidate(ctx context.Context) error
}

// Notifier admin notifications
type Notifier interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
}

// Metrics business counters
type Metrics interface {
	OrderCreated(bookingType string)
	CapacityRejected(bookingType string)
}

// TransactionManager runs fn in a transaction
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

// RealTimeProvider current time in the business timezone
type RealTimeProvider struct {
	Location *time.Location
}

func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
