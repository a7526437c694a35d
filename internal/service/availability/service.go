package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/internal/scheduling"
)

// Service read side of the booking counters.
// Windows are served from the cache when possible, a cache failure falls through to the database.
// A window loaded while an order commit invalidates the cache is returned but not cached.
type Service struct {
	counterRepo CounterRepository
	cache       Cache
	logger      Logger
}

// NewService creates a new availability service
func NewService(counterRepo CounterRepository, cache Cache, logger Logger) *Service {
	return &Service{
		counterRepo: counterRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Counts booking counters of every date in [from, to]. Dates without orders are absent.
func (s *Service) Counts(ctx context.Context, from, to time.Time) (domain.BookingCounts, error) {
	from, to = scheduling.StartOfDay(from), scheduling.StartOfDay(to)
	if from.After(to) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from.Format(domain.DateFormat), to.Format(domain.DateFormat))
	}

	counts, ok, err := s.cache.Get(ctx, from, to)
	if err != nil {
		s.logger.Warn("Counts: cache read failed for %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
	}
	if ok {
		return counts, nil
	}

	// taken before the database read, a commit after this point makes the Set below a no-op
	generation, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		s.logger.Warn("Counts: cache generation read failed, skipping cache write: %v", genErr)
	}

	counts, err = s.counterRepo.GetRange(ctx, from, to)
	if err != nil {
		s.logger.Error("Counts: repository error for %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Counts - repository error: %v", ErrInternal, err)
	}

	if genErr != nil {
		return counts, nil
	}
	if err := s.cache.Set(ctx, from, to, generation, counts); err != nil {
		s.logger.Warn("Counts: cache write failed for %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
	}

	return counts, nil
}
