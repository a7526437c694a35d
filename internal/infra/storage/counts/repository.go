package counts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sliques/SLQ-OrderService/internal/domain"
	"github.com/sliques/SLQ-OrderService/pkg/dbmetrics"
	"github.com/sliques/SLQ-OrderService/pkg/psqlbuilder"
)

const table = "booking_counts"

// Repository per-date order counters (booking_counts table)
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRange returns the counters of every date in [from, to] that has at least one order.
// Dates without a row are absent from the map.
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) (domain.BookingCounts, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"to_char(slot_date, 'YYYY-MM-DD')",
		"normal_count",
		"urgent_count",
	).
		From(table).
		Where(squirrel.GtOrEq{"slot_date": domain.DateKey(from)}).
		Where(squirrel.LtOrEq{"slot_date": domain.DateKey(to)}).
		OrderBy("slot_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(domain.BookingCounts)
	for rows.Next() {
		var (
			key    string
			counts domain.DayCounts
		)
		if err := rows.Scan(&key, &counts.Normal, &counts.Urgent); err != nil {
			return nil, fmt.Errorf("%w: GetRange - scan row: %v", ErrScanRow, err)
		}
		result[key] = counts
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRange - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// Reserve atomically increments the counter of bookingType on date.
// With limit > 0 the increment only happens while the counter is below limit,
// otherwise ErrCapacityExceeded is returned and nothing changes. limit <= 0 means no cap.
// Returns the counter value after the increment.
func (r *Repository) Reserve(ctx context.Context, date time.Time, bookingType domain.BookingType, limit int) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildReserveQuery(date, bookingType, limit)
	if err != nil {
		return 0, err
	}

	var value int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return 0, reserveError(err)
	}

	return value, nil
}

// Release decrements the counter of bookingType on date, never below zero
func (r *Repository) Release(ctx context.Context, date time.Time, bookingType domain.BookingType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildReleaseQuery(date, bookingType)
	if err != nil {
		return err
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// buildReserveQuery upsert that inserts the first order of a date or bumps the existing counter.
// The conflict branch carries the capacity guard, so a full date updates no row and returns nothing.
func buildReserveQuery(date time.Time, bookingType domain.BookingType, limit int) (string, []interface{}, error) {
	column, err := counterColumn(bookingType)
	if err != nil {
		return "", nil, err
	}

	normal, urgent := 0, 0
	if bookingType == domain.BookingUrgent {
		urgent = 1
	} else {
		normal = 1
	}

	suffix := fmt.Sprintf("ON CONFLICT (slot_date) DO UPDATE SET %[1]s = %[2]s.%[1]s + 1, updated_at = NOW()", column, table)
	suffixArgs := []interface{}{}
	if limit > 0 {
		suffix += fmt.Sprintf(" WHERE %s.%s < ?", table, column)
		suffixArgs = append(suffixArgs, limit)
	}
	suffix += " RETURNING " + column

	query, args, err := psqlbuilder.Insert(table).
		Columns("slot_date", "normal_count", "urgent_count").
		Values(domain.DateKey(date), normal, urgent).
		Suffix(suffix, suffixArgs...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Reserve - build upsert query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

func buildReleaseQuery(date time.Time, bookingType domain.BookingType) (string, []interface{}, error) {
	column, err := counterColumn(bookingType)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psqlbuilder.Update(table).
		Set(column, squirrel.Expr(column+" - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slot_date": domain.DateKey(date)}).
		Where(squirrel.Gt{column: 0}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

// reserveError maps the upsert scan error. No returned row means the capacity guard rejected the update.
func reserveError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCapacityExceeded
	}
	return fmt.Errorf("%w: Reserve - execute upsert: %v", ErrExecQuery, err)
}

func counterColumn(bookingType domain.BookingType) (string, error) {
	switch bookingType {
	case domain.BookingNormal:
		return "normal_count", nil
	case domain.BookingUrgent:
		return "urgent_count", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBookingType, bookingType)
	}
}
