package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/now"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	orderRepo "github.com/sliques/SLQ-OrderService/internal/infra/storage/order"
	"github.com/sliques/SLQ-OrderService/internal/service/orders/models"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service admin operations on orders
type Service struct {
	orderRepo    OrderRepository
	counterStore CounterStore
	cache        AvailabilityCache
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates a new orders service
func NewService(
	orderRepo OrderRepository,
	counterStore CounterStore,
	cache AvailabilityCache,
	notifier Notifier,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		orderRepo:    orderRepo,
		counterStore: counterStore,
		cache:        cache,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByOrderID returns one order
func (s *Service) GetByOrderID(ctx context.Context, orderID string) (*models.OrderResponse, error) {
	s.logger.Info("GetByOrderID: fetching order %s", orderID)

	order, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByOrderID: order %s not found", orderID)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByOrderID: repository error for order %s: %v", orderID, err)
		return nil, fmt.Errorf("%w: GetByOrderID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainOrder(order)
	return &resp, nil
}

// List returns a page of orders, newest first, optionally filtered by status
func (s *Service) List(ctx context.Context, req *models.ListOrdersRequest) (*models.OrderListResponse, error) {
	s.logger.Info("List: status=%v, limit=%d, skip=%d", req.Status, req.Limit, req.Skip)

	filter := domain.OrderFilter{Limit: req.Limit, Offset: req.Skip}
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", ErrInvalidInput)
	}
	if req.Status != nil {
		status, err := models.ToDomainOrderStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d orders", len(orders), total)
	return models.FromDomainOrderList(orders, total), nil
}

// UpdateStatus moves an order to a new status and appends the change to its history.
// Cancelling gives the delivery slot back exactly once; a cancelled order is final.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, req *models.UpdateStatusRequest) (*models.OrderResponse, error) {
	s.logger.Info("UpdateStatus: order %s to status=%s", orderID, req.Status)

	newStatus, err := models.ToDomainOrderStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for order %s", req.Status, orderID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var (
		updated  *domain.Order
		released bool
	)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		order, err := s.orderRepo.GetByOrderID(txCtx, orderID)
		if err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get order: %v", ErrInternal, err)
		}

		if !order.CanChangeStatus() {
			return fmt.Errorf("%w: order %s is %s", ErrInvalidStatusTransition, orderID, order.Status)
		}

		if newStatus == domain.StatusCancelled {
			if err := s.counterStore.Release(txCtx, order.SlotDate, order.BookingType); err != nil {
				return fmt.Errorf("%w: UpdateStatus - release slot: %v", ErrInternal, err)
			}
			released = true
		}

		updated, err = s.orderRepo.UpdateStatus(txCtx, orderID, domain.StatusChange{
			Status:    newStatus,
			Note:      req.Note,
			Timestamp: s.timeProvider.Now(),
		})
		if err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update order: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			s.logger.Warn("UpdateStatus: order %s not found", orderID)
		case errors.Is(err, ErrInvalidStatusTransition):
			s.logger.Warn("UpdateStatus: %v", err)
		case errors.Is(err, ErrInternal):
			s.logger.Error("UpdateStatus: %v", err)
		default:
			s.logger.Error("UpdateStatus: transaction failed for order %s: %v", orderID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	if released {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("UpdateStatus: failed to invalidate availability cache: %v", err)
		}
	}
	if err := s.notifier.OrderUpdated(ctx, updated); err != nil {
		s.logger.Warn("UpdateStatus: failed to notify admins about %s: %v", orderID, err)
	}

	s.logger.Info("UpdateStatus: order %s is now %s", orderID, updated.Status)
	resp := models.FromDomainOrder(updated)
	return &resp, nil
}

// TodayStats dashboard counters for the current day in the business timezone
func (s *Service) TodayStats(ctx context.Context) (*models.StatsResponse, error) {
	start := now.With(s.timeProvider.Now()).BeginningOfDay()
	day := domain.DayRange{Start: start, End: start.AddDate(0, 0, 1)}

	stats, err := s.orderRepo.TodayStats(ctx, day)
	if err != nil {
		s.logger.Error("TodayStats: repository error: %v", err)
		return nil, fmt.Errorf("%w: TodayStats - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStats(stats), nil
}
