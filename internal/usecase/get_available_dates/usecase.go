package get_available_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/internal/scheduling"
)

// UseCase remaining normal slots for every date of the booking window plus urgent bookability.
// The normal window starts NormalMinDays after today and spans NormalSearchDays dates,
// the urgent window starts at now+UrgentMinHours and spans UrgentSearchDays dates.
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
	start := scheduling.AddDays(scheduling.StartOfDay(now), uc.rules.NormalMinDays)
	end := scheduling.AddDays(start, uc.rules.NormalSearchDays-1)
	urgentStart := scheduling.UrgentSearchStart(now, uc.rules)
	urgentEnd := scheduling.AddDays(urgentStart, uc.rules.UrgentSearchDays-1)

	// one read covers both windows
	from, to := earliest(start, urgentStart), latest(end, urgentEnd)

	uc.logger.Info("GetAvailableDates: window %s..%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	counts, err := uc.counts.Counts(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to load counts: %v", err)
		return nil, fmt.Errorf("%w: failed to load counts: %v", ErrInternal, err)
	}

	dates := scheduling.Availability(counts, uc.rules, start, uc.rules.NormalSearchDays)

	return &Response{
		MinDaysAhead:       uc.rules.NormalMinDays,
		MaxPerDay:          uc.rules.MaxNormalPerDay,
		FirstAvailableDate: scheduling.FirstAvailable(dates),
		Dates:              dates,
		UrgentDates:        scheduling.UrgentAvailability(counts, uc.rules, now),
	}, nil
}

func earliest(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
