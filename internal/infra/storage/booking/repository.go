package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBookingService/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"tour_package_id",
	"agent_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"number_of_people",
	"total_amount",
	"agent_commission",
	"status",
	"notes",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"tour_package_id",
			"agent_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"number_of_people",
			"total_amount",
			"agent_commission",
			"status",
			"notes",
		).
		Values(
			booking.TourPackageID,
			booking.AgentID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.NumberOfPeople,
			booking.TotalAmount,
			booking.AgentCommission,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, новые сначала
//
// Примеры:
//
//	// Все бронирования агента
//	filter := domain.BookingsFilter{AgentID: &agentID}
//
//	// Завершенные бронирования за октябрь
//	status := domain.StatusCompleted
//	filter := domain.BookingsFilter{Status: &status, FromDate: &from, ToDate: &to}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(columns...).From(table), filter).
		OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Update перезаписывает изменяемые поля бронирования
func (r *Repository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("customer_name", booking.CustomerName).
		Set("customer_email", booking.CustomerEmail).
		Set("customer_phone", booking.CustomerPhone).
		Set("number_of_people", booking.NumberOfPeople).
		Set("total_amount", booking.TotalAmount).
		Set("agent_commission", booking.AgentCommission).
		Set("status", booking.Status).
		Set("notes", booking.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return updated, nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Stats считает агрегаты бронирований по фильтру
// Выручка и комиссия считаются только по завершенным бронированиям
func (r *Repository) Stats(ctx context.Context, filter domain.BookingsFilter) (domain.BookingStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", domain.StatusPending)).
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", domain.StatusCompleted)).
		Column(squirrel.Expr("COALESCE(SUM(total_amount) FILTER (WHERE status = ?), 0)", domain.StatusCompleted)).
		Column(squirrel.Expr("COALESCE(SUM(agent_commission) FILTER (WHERE status = ?), 0)", domain.StatusCompleted)).
		From(table)

	query, args, err := applyFilter(selectBuilder, filter).ToSql()
	if err != nil {
		return domain.BookingStats{}, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.BookingStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.TotalBookings,
		&stats.PendingBookings,
		&stats.CompletedBookings,
		&stats.CompletedRevenue,
		&stats.CompletedCommission,
	)
	if err != nil {
		return domain.BookingStats{}, fmt.Errorf("%w: Stats - scan row: %w", ErrScanRow, err)
	}

	return stats, nil
}

// applyFilter добавляет условия фильтра к выборке
func applyFilter(builder squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	if filter.AgentID != nil {
		builder = builder.Where(squirrel.Eq{"agent_id": *filter.AgentID})
	}
	if filter.TourPackageID != nil {
		builder = builder.Where(squirrel.Eq{"tour_package_id": *filter.TourPackageID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}

	// Период по дате создания, границы включительно
	if filter.FromDate != nil {
		builder = builder.Where(squirrel.Expr("DATE(created_at) >= ?", filter.FromDate.Format(domain.DateFormat)))
	}
	if filter.ToDate != nil {
		builder = builder.Where(squirrel.Expr("DATE(created_at) <= ?", filter.ToDate.Format(domain.DateFormat)))
	}

	return builder
}

// scanBooking сканирует строку бронирования
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking

	err := row.Scan(
		&booking.ID,
		&booking.TourPackageID,
		&booking.AgentID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.NumberOfPeople,
		&booking.TotalAmount,
		&booking.AgentCommission,
		&booking.Status,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
