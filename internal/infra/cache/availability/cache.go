package availability

import (
	"context"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
)

// Cache short-lived copy of booking counters for a date window.
// Counters change on every order, so writers call Invalidate after committing.
// Every Invalidate bumps the generation. A reader takes Generation before loading
// counts from the database and hands it to Set, which skips the write when an
// invalidation happened in between, so a window read before a commit is never
// cached after it.
type Cache interface {
	Get(ctx context.Context, from, to time.Time) (domain.BookingCounts, bool, error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, from, to time.Time, generation int64, counts domain.BookingCounts) error
	Invalidate(ctx context.Context) error
}

// Noop cache used when Redis is not configured
type Noop struct{}

func (Noop) Get(ctx context.Context, from, to time.Time) (domain.BookingCounts, bool, error) {
	return nil, false, nil
}

func (Noop) Generation(ctx context.Context) (int64, error) {
	return 0, nil
}

func (Noop) Set(ctx context.Context, from, to time.Time, generation int64, counts domain.BookingCounts) error {
	return nil
}

func (Noop) Invalidate(ctx context.Context) error {
	return nil
}
