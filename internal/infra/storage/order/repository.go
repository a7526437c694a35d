package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/pkg/dbmetrics"
	"github.com/sliques/SLQ-OrderService/pkg/psqlbuilder"
)

const table = "orders"

// Repository orders storage
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// NextOrderNumber returns the next human readable order id (SLQ1231, SLQ1232, ...)
func (r *Repository) NextOrderNumber(ctx context.Context) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var seq int64
	if err := executor.QueryRowContext(ctx, "SELECT nextval('order_number_seq')").Scan(&seq); err != nil {
		return "", fmt.Errorf("%w: NextOrderNumber - nextval: %v", ErrExecQuery, err)
	}

	return domain.FormatOrderID(seq), nil
}

// Create inserts a new order and fills its ID
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	row, err := toRow(o)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"order_id",
			"customer_name",
			"phone",
			"address",
			"service_type",
			"service_id",
			"service_name",
			"customization",
			"add_ons",
			"booking_type",
			"measurement_method",
			"measurements",
			"tailor_visit_date",
			"processing_start_date",
			"estimated_delivery",
			"slot_date",
			"base_price",
			"add_ons_total",
			"urgent_surcharge",
			"total_amount",
			"advance_amount",
			"balance_amount",
			"requires_advance",
			"payment_status",
			"status",
			"status_history",
			"notes",
			"created_at",
			"updated_at",
		).
		Values(
			row.OrderID,
			row.CustomerName,
			row.Phone,
			row.Address,
			row.ServiceType,
			row.ServiceID,
			row.ServiceName,
			string(row.Customization),
			string(row.AddOns),
			row.BookingType,
			row.MeasurementMethod,
			string(row.Measurements),
			row.TailorVisitDate,
			row.ProcessingStart,
			row.EstimatedDelivery,
			row.SlotDate,
			row.BasePrice,
			row.AddOnsTotal,
			row.UrgentSurcharge,
			row.TotalAmount,
			row.AdvanceAmount,
			row.BalanceAmount,
			row.RequiresAdvance,
			row.PaymentStatus,
			row.Status,
			string(row.StatusHistory),
			row.Notes,
			row.CreatedAt,
			row.UpdatedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&o.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return o, nil
}

// GetByOrderID returns one order.
// Inside a transaction the row is locked with FOR UPDATE.
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"order_id": orderID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - build select query: %v", ErrBuildQuery, err)
	}

	row, err := scanRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOrderID - scan order: %v", ErrScanRow, err)
	}

	return row.toDomain()
}

// List returns a page of orders, newest first, and the total matching the filter
func (r *Repository) List(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.And{}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": string(*filter.Status)})
	}

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute count: %v", ErrExecQuery, err)
	}

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC")
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan order: %v", ErrScanRow, err)
		}
		o, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return orders, total, nil
}

// UpdateStatus sets the status and appends change to the status history
func (r *Repository) UpdateStatus(ctx context.Context, orderID string, change domain.StatusChange) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	entry, err := json.Marshal([]domain.StatusChange{change})
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - status change: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(change.Status)).
		Set("status_history", squirrel.Expr("status_history || ?::jsonb", string(entry))).
		Set("updated_at", change.Timestamp).
		Where(squirrel.Eq{"order_id": orderID}).
		Suffix("RETURNING " + strings.Join(selectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	row, err := scanRow(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return row.toDomain()
}

// TodayStats dashboard counters; day bounds the orders created "today"
func (r *Repository) TodayStats(ctx context.Context, day domain.DayRange) (*domain.OrderStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inProgress := make([]string, len(domain.InProgressStatuses))
	for i, s := range domain.InProgressStatuses {
		inProgress[i] = string(s)
	}

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE created_at >= ? AND created_at < ?)", day.Start, day.End)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", string(domain.StatusPickupAwaited))).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ANY(?))", pq.Array(inProgress))).
		Column(squirrel.Expr(
			"COALESCE(SUM(total_amount) FILTER (WHERE created_at >= ? AND created_at < ? AND status <> ?), 0)",
			day.Start, day.End, string(domain.StatusCancelled),
		)).
		From(table).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: TodayStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.OrderStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TodayOrders,
		&stats.PendingOrders,
		&stats.InProgressOrders,
		&stats.TodayRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: TodayStats - scan stats: %v", ErrScanRow, err)
	}

	return &stats, nil
}
