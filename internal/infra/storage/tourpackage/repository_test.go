package tourpackage

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/pkg/dbmetrics"
)

var (
	startDate = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	endDate   = time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
	createdAt = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
)

func newRepository(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func packageRows(available int) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		int64(1), "Alps Explorer", "Seven days in the Alps", "{Zermatt,Chamonix}",
		startDate, endDate, "100.00", 10, available, "{Hotel,Guide}", "active",
		createdAt, createdAt,
	)
}

func TestReserveSlotsDecrementsConditionally(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE tour_packages SET available_slots = available_slots - $1, updated_at = NOW() WHERE id = $2 AND available_slots >= $3 RETURNING",
	)).WithArgs(3, int64(1), 3).WillReturnRows(packageRows(7))

	pkg, err := repo.ReserveSlots(context.Background(), 1, 3)
	require.NoError(t, err)

	assert.Equal(t, 7, pkg.AvailableSlots)
	assert.Equal(t, []string{"Zermatt", "Chamonix"}, pkg.Destinations)
	assert.True(t, decimal.RequireFromString("100").Equal(pkg.Price))
	assert.Equal(t, domain.PackageStatusActive, pkg.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSlotsInsufficient(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectQuery("UPDATE tour_packages").WithArgs(8, int64(1), 8).WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name")).WithArgs(int64(1)).WillReturnRows(packageRows(7))

	_, err := repo.ReserveSlots(context.Background(), 1, 8)

	require.ErrorIs(t, err, ErrInsufficientSlots)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSlotsPackageNotFound(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectQuery("UPDATE tour_packages").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("SELECT id, name").WillReturnError(sql.ErrNoRows)

	_, err := repo.ReserveSlots(context.Background(), 1, 1)

	require.ErrorIs(t, err, ErrPackageNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSlotsKeepsDriverError(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectQuery("UPDATE tour_packages").WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.ReserveSlots(context.Background(), 1, 1)

	require.ErrorIs(t, err, ErrExecQuery)
	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestReleaseSlotsClampsInSQL(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE tour_packages SET available_slots = LEAST(available_slots + $1, max_capacity)",
	)).WithArgs(5, int64(1)).WillReturnRows(packageRows(10))

	pkg, err := repo.ReleaseSlots(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, pkg.AvailableSlots)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDLocksRowInTransaction(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tour_packages WHERE id = $1")).
		WithArgs(int64(1)).WillReturnRows(packageRows(10))

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM tour_packages WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(1)).WillReturnRows(packageRows(10))
	mock.ExpectRollback()

	_, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	_, err = repo.GetByID(dbmetrics.WithTx(context.Background(), tx), 1)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListOnlyAvailable(t *testing.T) {
	repo, _, mock := newRepository(t)

	rows := sqlmock.NewRows(append(append([]string{}, columns...), "bookings_count")).AddRow(
		int64(1), "Alps Explorer", "Seven days in the Alps", "{Zermatt}",
		startDate, endDate, "100.00", 10, 4, "{Hotel}", "active",
		createdAt, createdAt, 3,
	)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM tour_packages WHERE status = $1 AND available_slots > $2 ORDER BY created_at DESC, id DESC LIMIT 6",
	)).WithArgs("active", 0).WillReturnRows(rows)

	packages, err := repo.List(context.Background(), domain.TourPackagesFilter{
		OnlyAvailable: true,
		Limit:         domain.FeaturedPackagesLimit,
	})
	require.NoError(t, err)

	require.Len(t, packages, 1)
	assert.Equal(t, 3, packages[0].BookingsCount)
	assert.Equal(t, 6, packages[0].BookedSlots())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM tour_packages WHERE id = $1")).
		WithArgs(int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.Delete(context.Background(), 9), ErrPackageNotFound)
}

func TestStats(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1) FROM tour_packages")).
		WithArgs("active").
		WillReturnRows(sqlmock.NewRows([]string{"total", "active"}).AddRow(5, 3))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PackageStats{TotalPackages: 5, ActivePackages: 3}, stats)
}
