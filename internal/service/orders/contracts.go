package orders

import (
	"context"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// OrderRepository orders storage
type OrderRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error)
	List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int, error)
	UpdateStatus(ctx context.Context, orderID string, change domain.StatusChange) (*domain.Order, error)
	TodayStats(ctx context.Context, day domain.DayRange) (*domain.OrderStats, error)
}

// CounterStore releases the delivery slot of a cancelled order
type CounterStore interface {
	Release(ctx context.Context, date time.Time, bookingType domain.BookingType) error
}

// AvailabilityCache cached counters dropped after a slot is released
type AvailabilityCache interface {
	Invalidate(ctx context.Context) error
}

// Notifier admin notifications
type Notifier interface {
	OrderUpdated(ctx context.Context, order *domain.Order) error
}

// TransactionManager runs fn in a transaction
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
