package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/internal/scheduling"
)

// UseCase previews what an order would cost and when it would be delivered. Nothing is persisted.
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
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuotePrice: validation failed: %v", err)
		return nil, err
	}

	var selection domain.Selection = domain.CatalogSelection{ServiceID: req.ServiceID}
	if req.ServiceType == domain.ServiceTypeCustom {
		selection = domain.CustomSelection{BaseServiceID: req.ServiceID}
	}
	resolved, err := domain.ResolveSelection(selection, req.AddOnIDs)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) || errors.Is(err, domain.ErrAddOnNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := uc.timeProvider.Now()
	isUrgent := req.BookingType.IsUrgent()

	visitDate := req.TailorVisitDate
	if req.MeasurementMethod == domain.MeasurementTailor && visitDate != nil {
		visit := scheduling.DateIn(*visitDate, now.Location())
		if visit.Before(scheduling.StartOfDay(now)) {
			return nil, fmt.Errorf("%w: tailorVisitDate %s is in the past", ErrInvalidDate, visit.Format(domain.DateFormat))
		}
		visitDate = &visit
	}

	pricing := scheduling.CalculatePrice(resolved.Service.BasePrice, isUrgent, resolved.AddOns, resolved.Service.RequiresAdvance, uc.rules)
	processingStart := scheduling.ProcessingStartDate(req.MeasurementMethod, visitDate, now)

	counts := domain.BookingCounts{}
	if !isUrgent {
		from, to := scheduling.DeliverySearchRange(scheduling.EstimatedDeliveryDate(processingStart, false, uc.rules), uc.rules)
		counts, err = uc.counts.Counts(ctx, from, to)
		if err != nil {
			uc.logger.Error("QuotePrice: failed to load counts: %v", err)
			return nil, fmt.Errorf("%w: failed to load counts: %v", ErrInternal, err)
		}
	}
	plan := scheduling.PlanDelivery(processingStart, req.BookingType, counts, uc.rules)

	uc.logger.Info("QuotePrice: service=%s, booking=%s, total=%d, delivery=%s",
		resolved.Service.ID, req.BookingType, pricing.Total, plan.EstimatedDelivery.Format(domain.DateFormat))

	return &Response{
		ServiceName:         resolved.Service.Name,
		AddOns:              resolved.AddOns,
		Pricing:             pricing,
		ProcessingStartDate: plan.ProcessingStart,
		EstimatedDelivery:   plan.EstimatedDelivery,
		DeliveryShifted:     plan.Shifted,
	}, nil
}

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if req.ServiceType == "" {
		req.ServiceType = domain.ServiceTypeBooking
	}
	if req.ServiceType != domain.ServiceTypeBooking && req.ServiceType != domain.ServiceTypeCustom {
		return fmt.Errorf("%w: serviceType must be booking or custom", ErrInvalidInput)
	}
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.BookingType == "" {
		req.BookingType = domain.BookingNormal
	}
	if !req.BookingType.IsValid() {
		return fmt.Errorf("%w: bookingType must be normal or urgent", ErrInvalidInput)
	}
	if req.MeasurementMethod == "" {
		req.MeasurementMethod = domain.MeasurementSelf
	}
	if req.MeasurementMethod != domain.MeasurementSelf && req.MeasurementMethod != domain.MeasurementTailor {
		return fmt.Errorf("%w: measurementMethod must be self or tailor", ErrInvalidInput)
	}
	return nil
}
