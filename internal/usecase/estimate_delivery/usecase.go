package estimate_delivery

import (
	"context"
	"fmt"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/internal/scheduling"
)

// UseCase delivery date a new order would get if it started processing on a given day
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

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	bookingType := req.BookingType
	if bookingType == "" {
		bookingType = domain.BookingNormal
	}
	if !bookingType.IsValid() {
		return nil, fmt.Errorf("%w: bookingType must be normal or urgent", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	processingStart := scheduling.AddDays(scheduling.StartOfDay(now), 1)
	if req.ProcessingStart != nil {
		processingStart = scheduling.DateIn(*req.ProcessingStart, now.Location())
	}

	counts := domain.BookingCounts{}
	if !bookingType.IsUrgent() {
		estimated := scheduling.EstimatedDeliveryDate(processingStart, false, uc.rules)
		from, to := scheduling.DeliverySearchRange(estimated, uc.rules)

		var err error
		counts, err = uc.counts.Counts(ctx, from, to)
		if err != nil {
			uc.logger.Error("EstimateDelivery: failed to load counts: %v", err)
			return nil, fmt.Errorf("%w: failed to load counts: %v", ErrInternal, err)
		}
	}

	plan := scheduling.PlanDelivery(processingStart, bookingType, counts, uc.rules)
	if plan.Fallback {
		uc.logger.Warn("EstimateDelivery: no normal capacity within %d days of %s",
			uc.rules.DeliverySearchDays, plan.SlotDate.Format(domain.DateFormat))
	}

	return &Response{
		ProcessingStartDate:   plan.ProcessingStart,
		EstimatedDelivery:     plan.EstimatedDelivery,
		MaxPerDay:             uc.rules.MaxNormalPerDay,
		MinDaysFromProcessing: uc.rules.NormalMinDays,
		Shifted:               plan.Shifted,
	}, nil
}
