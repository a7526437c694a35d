package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	orderRepo "github.com/sliques/SLQ-OrderService/internal/infra/storage/order"
	"github.com/sliques/SLQ-OrderService/internal/service/orders/models"
	"github.com/sliques/SLQ-OrderService/pkg/ptr"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRepo struct {
	orders     map[string]*domain.Order
	lastFilter domain.OrderFilter
	lastDay    domain.DayRange
	listErr    error
}

func (f *fakeRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, orderRepo.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeRepo) List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int, error) {
	f.lastFilter = filter
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	out := make([]*domain.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, orderID string, change domain.StatusChange) (*domain.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, orderRepo.ErrOrderNotFound
	}
	o.Status = change.Status
	o.StatusHistory = append(o.StatusHistory, change)
	o.UpdatedAt = change.Timestamp
	return o, nil
}

func (f *fakeRepo) TodayStats(ctx context.Context, day domain.DayRange) (*domain.OrderStats, error) {
	f.lastDay = day
	return &domain.OrderStats{TodayOrders: 3, PendingOrders: 2, InProgressOrders: 5, TodayRevenue: 4200}, nil
}

type release struct {
	date        string
	bookingType domain.BookingType
}

type fakeCounters struct{ released []release }

func (f *fakeCounters) Release(ctx context.Context, date time.Time, bookingType domain.BookingType) error {
	f.released = append(f.released, release{date: domain.DateKey(date), bookingType: bookingType})
	return nil
}

type fakeCache struct{ invalidated int }

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.invalidated++
	return nil
}

type fakeNotifier struct{ updated []string }

func (f *fakeNotifier) OrderUpdated(ctx context.Context, order *domain.Order) error {
	f.updated = append(f.updated, order.OrderID+":"+string(order.Status))
	return nil
}

var (
	ist      = time.FixedZone("IST", 5*3600+1800)
	fixedNow = time.Date(2025, 3, 10, 18, 30, 0, 0, ist)
)

func testOrder(id string) *domain.Order {
	created := time.Date(2025, 3, 8, 11, 0, 0, 0, ist)
	return &domain.Order{
		ID:                  1,
		OrderID:             id,
		Customer:            domain.Customer{Name: "Meera Iyer", Phone: "+91 90000 11111", Address: "Indiranagar, Bengaluru"},
		Selection:           domain.CatalogSelection{ServiceID: "anarkali"},
		ServiceName:         "Anarkali & Sharara",
		BookingType:         domain.BookingNormal,
		Measurement:         domain.SelfMeasurement{Values: map[string]string{"bust": "36"}},
		ProcessingStartDate: time.Date(2025, 3, 9, 0, 0, 0, 0, ist),
		EstimatedDelivery:   time.Date(2025, 3, 16, 0, 0, 0, 0, ist),
		SlotDate:            time.Date(2025, 3, 16, 0, 0, 0, 0, ist),
		Status:              domain.StatusPickupAwaited,
		PaymentStatus:       domain.PaymentPending,
		StatusHistory:       []domain.StatusChange{{Status: domain.StatusPickupAwaited, Note: "Order placed", Timestamp: created}},
		CreatedAt:           created,
		UpdatedAt:           created,
	}
}

type fixture struct {
	repo     *fakeRepo
	counters *fakeCounters
	cache    *fakeCache
	notifier *fakeNotifier
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:     &fakeRepo{orders: map[string]*domain.Order{"SLQ1231": testOrder("SLQ1231")}},
		counters: &fakeCounters{},
		cache:    &fakeCache{},
		notifier: &fakeNotifier{},
	}
	f.svc = NewService(f.repo, f.counters, f.cache, f.notifier, passthroughTx{}, fixedTime{now: fixedNow}, nopLogger{})
	return f
}

func TestGetByOrderID(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.GetByOrderID(context.Background(), "SLQ1231")
	require.NoError(t, err)
	assert.Equal(t, "SLQ1231", resp.OrderID)
	assert.Equal(t, "booking", resp.ServiceType)
	assert.Equal(t, "anarkali", resp.ServiceID)
	assert.Equal(t, "self", resp.MeasurementMethod)
	assert.Equal(t, "2025-03-09", resp.ProcessingStartDate)

	_, err = f.svc.GetByOrderID(context.Background(), "SLQ9999")
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestList(t *testing.T) {
	tests := []struct {
		name       string
		req        *models.ListOrdersRequest
		wantFilter domain.OrderFilter
		wantErr    error
	}{
		{
			name:       "defaults",
			req:        &models.ListOrdersRequest{},
			wantFilter: domain.OrderFilter{Limit: DefaultListLimit},
		},
		{
			name:       "limit is capped",
			req:        &models.ListOrdersRequest{Limit: 5000, Skip: 100},
			wantFilter: domain.OrderFilter{Limit: MaxListLimit, Offset: 100},
		},
		{
			name:       "status filter",
			req:        &models.ListOrdersRequest{Status: ptr.Ptr("processing"), Limit: 10},
			wantFilter: domain.OrderFilter{Limit: 10, Status: ptr.Ptr(domain.StatusProcessing)},
		},
		{
			name:    "unknown status",
			req:     &models.ListOrdersRequest{Status: ptr.Ptr("lost")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative skip",
			req:     &models.ListOrdersRequest{Skip: -1},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			resp, err := f.svc.List(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFilter, f.repo.lastFilter)
			assert.Equal(t, 1, resp.Total)
			assert.Len(t, resp.Orders, 1)
		})
	}
}

func TestList_RepositoryError(t *testing.T) {
	f := newFixture()
	f.repo.listErr = errors.New("timeout")

	_, err := f.svc.List(context.Background(), &models.ListOrdersRequest{})
	require.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatus_AppendsHistory(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.UpdateStatus(context.Background(), "SLQ1231", &models.UpdateStatusRequest{
		Status: "fabric-received",
		Note:   "Picked up by Ravi",
	})
	require.NoError(t, err)

	assert.Equal(t, "fabric-received", resp.Status)
	require.Len(t, resp.StatusHistory, 2)
	assert.Equal(t, "Picked up by Ravi", resp.StatusHistory[1].Note)
	assert.True(t, resp.StatusHistory[1].Timestamp.Equal(fixedNow))

	assert.Empty(t, f.counters.released)
	assert.Zero(t, f.cache.invalidated)
	assert.Equal(t, []string{"SLQ1231:fabric-received"}, f.notifier.updated)
}

func TestUpdateStatus_CancelReleasesSlotOnce(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), "SLQ1231", &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	require.Equal(t, []release{{date: "2025-03-16", bookingType: domain.BookingNormal}}, f.counters.released)
	assert.Equal(t, 1, f.cache.invalidated)

	// a cancelled order is final
	_, err = f.svc.UpdateStatus(context.Background(), "SLQ1231", &models.UpdateStatusRequest{Status: "cancelled"})
	require.ErrorIs(t, err, ErrInvalidStatusTransition)
	_, err = f.svc.UpdateStatus(context.Background(), "SLQ1231", &models.UpdateStatusRequest{Status: "processing"})
	require.ErrorIs(t, err, ErrInvalidStatusTransition)

	assert.Len(t, f.counters.released, 1)
	assert.Len(t, f.notifier.updated, 1)
}

func TestUpdateStatus_Errors(t *testing.T) {
	f := newFixture()

	_, err := f.svc.UpdateStatus(context.Background(), "SLQ1231", &models.UpdateStatusRequest{Status: "shipped"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.UpdateStatus(context.Background(), "SLQ4040", &models.UpdateStatusRequest{Status: "ready"})
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestTodayStats_UsesBusinessDay(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.TodayStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &models.StatsResponse{TodayOrders: 3, PendingOrders: 2, InProgressOrders: 5, TodayRevenue: 4200}, resp)
	assert.True(t, f.repo.lastDay.Start.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, ist)))
	assert.True(t, f.repo.lastDay.End.Equal(time.Date(2025, 3, 11, 0, 0, 0, 0, ist)))
}
