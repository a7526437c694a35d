package create_order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	countsRepo "github.com/sliques/SLQ-OrderService/internal/infra/storage/counts"
	"github.com/sliques/SLQ-OrderService/internal/scheduling"
)

// UseCase places a new order: prices it, schedules it and takes a delivery slot
type UseCase struct {
	orderRepo    OrderRepository
	counterStore CounterStore
	cache        AvailabilityCache
	notifier     Notifier
	metrics      Metrics
	txManager    TransactionManager
	rules        domain.BookingRules
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(
	orderRepo OrderRepository,
	counterStore CounterStore,
	cache AvailabilityCache,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	rules domain.BookingRules,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		counterStore: counterStore,
		cache:        cache,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		rules:        rules,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute creates the order.
// Counter reads, the slot reservation and the insert share one serializable transaction,
// so two requests racing for the last slot of a date cannot both succeed.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Request validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("CreateOrder: service=%s, type=%s, booking=%s, measurement=%s, addOns=%d",
		req.ServiceID, req.ServiceType, req.BookingType, req.MeasurementMethod, len(req.AddOnIDs))

	now := uc.timeProvider.Now()

	// 2. Resolve the selection against the catalog
	selection := buildSelection(req)
	resolved, err := domain.ResolveSelection(selection, req.AddOnIDs)
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) || errors.Is(err, domain.ErrAddOnNotFound) {
			uc.logger.Warn("CreateOrder: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrServiceNotFound, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Measurement and visit date
	measurement := buildMeasurement(req, now.Location())
	visitDate := visitDateOf(measurement)
	if visitDate != nil {
		if err := validateVisitDate(*visitDate, now); err != nil {
			uc.logger.Warn("CreateOrder: %v", err)
			return nil, err
		}
	}

	// 4. Price and processing start
	isUrgent := req.BookingType.IsUrgent()
	pricing := scheduling.CalculatePrice(resolved.Service.BasePrice, isUrgent, resolved.AddOns, resolved.Service.RequiresAdvance, uc.rules)
	processingStart := scheduling.ProcessingStartDate(req.MeasurementMethod, visitDate, now)

	var (
		result *domain.Order
		plan   scheduling.DeliveryPlan
	)

	// 5. Plan delivery, take the slot and persist the order
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Counters of the delivery search window
		counts := domain.BookingCounts{}
		if !isUrgent {
			estimated := scheduling.EstimatedDeliveryDate(processingStart, false, uc.rules)
			from, to := scheduling.DeliverySearchRange(estimated, uc.rules)
			window, err := uc.counterStore.GetRange(txCtx, from, to)
			if err != nil {
				uc.logger.Error("CreateOrder: failed to get booking counts: %v", err)
				return fmt.Errorf("%w: failed to get booking counts: %v", ErrInternal, err)
			}
			counts = window
		}

		// 5.2. Delivery date
		plan = scheduling.PlanDelivery(processingStart, req.BookingType, counts, uc.rules)
		if plan.Fallback {
			uc.logger.Warn("CreateOrder: no normal capacity within %d days of %s, keeping the estimate",
				uc.rules.DeliverySearchDays, plan.SlotDate.Format(domain.DateFormat))
		}

		// 5.3. Slot reservation
		if _, err := uc.counterStore.Reserve(txCtx, plan.SlotDate, req.BookingType, uc.rules.CapFor(req.BookingType)); err != nil {
			if errors.Is(err, countsRepo.ErrCapacityExceeded) {
				return ErrCapacityExceeded
			}
			uc.logger.Error("CreateOrder: failed to reserve slot on %s: %v", plan.SlotDate.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		// 5.4. Order id
		orderID, err := uc.orderRepo.NextOrderNumber(txCtx)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to allocate order id: %v", err)
			return fmt.Errorf("%w: failed to allocate order id: %v", ErrInternal, err)
		}

		// 5.5. Order
		order, err := domain.NewOrder(orderID, domain.OrderParams{
			Customer: domain.Customer{
				Name:    req.CustomerName,
				Phone:   req.Phone,
				Address: req.Address,
			},
			Selection:           selection,
			ServiceName:         resolved.Service.Name,
			AddOns:              resolved.AddOns,
			BookingType:         req.BookingType,
			Measurement:         measurement,
			ProcessingStartDate: plan.ProcessingStart,
			EstimatedDelivery:   plan.EstimatedDelivery,
			SlotDate:            plan.SlotDate,
			Pricing:             pricing,
			Notes:               req.Notes,
			CreatedAt:           now,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		result, err = uc.orderRepo.Create(txCtx, order)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to create order %s: %v", orderID, err)
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			uc.metrics.CapacityRejected(string(req.BookingType))
			uc.logger.Warn("CreateOrder: %s is fully booked for %s orders",
				plan.SlotDate.Format(domain.DateFormat), req.BookingType)
			return nil, err
		}
		if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateOrder: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	// 6. Side effects after commit, failures are logged only
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("CreateOrder: failed to invalidate availability cache: %v", err)
	}
	if err := uc.notifier.OrderCreated(ctx, result); err != nil {
		uc.logger.Warn("CreateOrder: failed to notify admins about %s: %v", result.OrderID, err)
	}
	uc.metrics.OrderCreated(string(req.BookingType))

	uc.logger.Info("CreateOrder: created %s, delivery=%s, total=%d, shifted=%t",
		result.OrderID, result.EstimatedDelivery.Format(domain.DateFormat), result.Pricing.Total, plan.Shifted)

	return &Response{Order: result, DeliveryShifted: plan.Shifted}, nil
}

func visitDateOf(m domain.Measurement) *time.Time {
	if visit, ok := m.(domain.TailorVisit); ok {
		d := visit.VisitDate
		return &d
	}
	return nil
}
