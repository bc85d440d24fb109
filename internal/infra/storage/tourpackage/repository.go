package tourpackage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBookingService/pkg/psqlbuilder"
)

const table = "tour_packages"

var columns = []string{
	"id",
	"name",
	"description",
	"destinations",
	"start_date",
	"end_date",
	"price",
	"max_capacity",
	"available_slots",
	"facilities",
	"status",
	"created_at",
	"updated_at",
}

const bookingsCountColumn = "(SELECT COUNT(*) FROM bookings b WHERE b.tour_package_id = tour_packages.id) AS bookings_count"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с тур-пакетами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тур-пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тур-пакет
func (r *Repository) Create(ctx context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"name",
			"description",
			"destinations",
			"start_date",
			"end_date",
			"price",
			"max_capacity",
			"available_slots",
			"facilities",
			"status",
		).
		Values(
			pkg.Name,
			pkg.Description,
			pq.Array(pkg.Destinations),
			pkg.StartDate,
			pkg.EndDate,
			pkg.Price,
			pkg.MaxCapacity,
			pkg.AvailableSlots,
			pq.Array(pkg.Facilities),
			pkg.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&pkg.ID, &pkg.CreatedAt, &pkg.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return pkg, nil
}

// GetByID получает тур-пакет по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TourPackage, error) {
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

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan package: %w", ErrScanRow, err)
	}

	return pkg, nil
}

// List получает тур-пакеты (новые сначала) вместе с количеством бронирований
func (r *Repository) List(ctx context.Context, filter domain.TourPackagesFilter) ([]*domain.TourPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		Column(bookingsCountColumn).
		From(table).
		OrderBy("created_at DESC", "id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	// Пакеты, доступные для нового бронирования
	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"status": domain.PackageStatusActive}).
			Where(squirrel.Gt{"available_slots": 0})
	}

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

	packages := make([]*domain.TourPackage, 0)
	for rows.Next() {
		pkg, err := scanPackage(rows, true)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		packages = append(packages, pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return packages, nil
}

// Update перезаписывает все изменяемые поля тур-пакета, включая available_slots
func (r *Repository) Update(ctx context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", pkg.Name).
		Set("description", pkg.Description).
		Set("destinations", pq.Array(pkg.Destinations)).
		Set("start_date", pkg.StartDate).
		Set("end_date", pkg.EndDate).
		Set("price", pkg.Price).
		Set("max_capacity", pkg.MaxCapacity).
		Set("available_slots", pkg.AvailableSlots).
		Set("facilities", pq.Array(pkg.Facilities)).
		Set("status", pkg.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": pkg.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanPackage(executor.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return updated, nil
}

// Delete удаляет тур-пакет (бронирования удаляются каскадно)
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
		return ErrPackageNotFound
	}

	return nil
}

// ReserveSlots атомарно списывает count мест:
// UPDATE ... SET available_slots = available_slots - count WHERE id = ? AND available_slots >= count
// Если условие не выполнилось, различает отсутствие пакета и нехватку мест
func (r *Repository) ReserveSlots(ctx context.Context, id int64, count int) (*domain.TourPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("available_slots", squirrel.Expr("available_slots - ?", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"available_slots": count}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReserveSlots - build update query: %v", ErrBuildQuery, err)
	}

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrInsufficientSlots
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ReserveSlots - execute update: %w", ErrExecQuery, err)
	}

	return pkg, nil
}

// ReleaseSlots атомарно возвращает count мест, не превышая max_capacity
func (r *Repository) ReleaseSlots(ctx context.Context, id int64, count int) (*domain.TourPackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("available_slots", squirrel.Expr("LEAST(available_slots + ?, max_capacity)", count)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ReleaseSlots - build update query: %v", ErrBuildQuery, err)
	}

	pkg, err := scanPackage(executor.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ReleaseSlots - execute update: %w", ErrExecQuery, err)
	}

	return pkg, nil
}

// Stats считает общее количество пакетов и количество активных
func (r *Repository) Stats(ctx context.Context) (domain.PackageStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		Column(squirrel.Expr("COUNT(*) FILTER (WHERE status = ?)", domain.PackageStatusActive)).
		From(table).
		ToSql()

	if err != nil {
		return domain.PackageStats{}, fmt.Errorf("%w: Stats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.PackageStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(&stats.TotalPackages, &stats.ActivePackages)
	if err != nil {
		return domain.PackageStats{}, fmt.Errorf("%w: Stats - scan row: %w", ErrScanRow, err)
	}

	return stats, nil
}

// scanPackage сканирует строку тур-пакета
// withBookingsCount - в выборке есть колонка bookings_count после основных
func scanPackage(row rowScanner, withBookingsCount bool) (*domain.TourPackage, error) {
	var pkg domain.TourPackage

	dest := []interface{}{
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		pq.Array(&pkg.Destinations),
		&pkg.StartDate,
		&pkg.EndDate,
		&pkg.Price,
		&pkg.MaxCapacity,
		&pkg.AvailableSlots,
		pq.Array(&pkg.Facilities),
		&pkg.Status,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	}
	if withBookingsCount {
		dest = append(dest, &pkg.BookingsCount)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	return &pkg, nil
}
