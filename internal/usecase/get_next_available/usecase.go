package get_next_available

import (
	"context"
	"fmt"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/internal/scheduling"
)

// UseCase earliest date with capacity for a normal and for an urgent order
type UseCase struct {
	counts       CountsReader
	rules        domain.BookingRules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(counts CountsReader, rules domain.BookingRules, timeProvider TimeProvider, logger Logger) *UseCase {
	return &UseCase{
		counts:       counts,
		rules:        rules,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	today := scheduling.StartOfDay(now)

	// one counters window covering both scans
	normalStart := scheduling.AddDays(today, uc.rules.NormalMinDays)
	normalEnd := scheduling.AddDays(normalStart, uc.rules.NormalSearchDays-1)
	urgentStart := scheduling.StartOfDay(now.Add(time.Duration(uc.rules.UrgentMinHours) * time.Hour))
	urgentEnd := scheduling.AddDays(urgentStart, uc.rules.UrgentSearchDays-1)

	from, to := earliest(normalStart, urgentStart), latest(normalEnd, urgentEnd)

	counts, err := uc.counts.Counts(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetNextAvailable: failed to load counts: %v", err)
		return nil, fmt.Errorf("%w: failed to load counts: %v", ErrInternal, err)
	}

	resp := &Response{
		Normal: scheduling.NextAvailableNormalDate(counts, uc.rules, today),
		Urgent: scheduling.NextAvailableUrgentDate(counts, uc.rules, now),
	}
	uc.logger.Info("GetNextAvailable: normal=%s, urgent=%s",
		resp.Normal.Format(domain.DateFormat), resp.Urgent.Format(domain.DateFormat))

	return resp, nil
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
