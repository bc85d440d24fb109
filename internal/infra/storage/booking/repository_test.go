package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBookingService/pkg/ptr"
)

var createdAt = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func newRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		int64(10), int64(1), int64(2), "Jane Doe", "jane@example.com", "+1 555 0100",
		3, "300.00", "30.00", "pending", nil, createdAt, createdAt,
	)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (tour_package_id,agent_id,customer_name,customer_email,customer_phone,number_of_people,total_amount,agent_commission,status,notes) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id, created_at, updated_at")).
		WithArgs(int64(1), int64(2), "Jane Doe", "jane@example.com", "+1 555 0100", 3, "300", "30", "pending", "VIP").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), createdAt, createdAt))

	created, err := repo.Create(context.Background(), &domain.Booking{
		TourPackageID:   1,
		AgentID:         2,
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "+1 555 0100",
		NumberOfPeople:  3,
		TotalAmount:     decimal.RequireFromString("300.00"),
		AgentCommission: decimal.RequireFromString("30.00"),
		Status:          domain.StatusPending,
		Notes:           ptr.Ptr("VIP"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery("FROM bookings WHERE id").WithArgs(int64(5)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 5)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListAppliesFilter(t *testing.T) {
	repo, mock := newRepository(t)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	status := domain.StatusPending

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM bookings WHERE agent_id = $1 AND status = $2 AND DATE(created_at) >= $3 AND DATE(created_at) <= $4 ORDER BY created_at DESC, id DESC LIMIT 5",
	)).WithArgs(int64(2), "pending", "2025-01-01", "2025-01-31").WillReturnRows(bookingRows())

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{
		AgentID:  ptr.Ptr(int64(2)),
		Status:   &status,
		FromDate: &from,
		ToDate:   &to,
		Limit:    domain.RecentBookingsLimit,
	})
	require.NoError(t, err)

	require.Len(t, bookings, 1)
	assert.Equal(t, "30.00", bookings[0].AgentCommission.StringFixed(2))
	assert.Nil(t, bookings[0].Notes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET customer_name = $1")).WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), &domain.Booking{ID: 7, Status: domain.StatusCancelled})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bookings WHERE id = $1")).
		WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 10))
	require.ErrorIs(t, repo.Delete(context.Background(), 10), ErrBookingNotFound)
}

func TestStatsForAgent(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*), COUNT(*) FILTER (WHERE status = $1), COUNT(*) FILTER (WHERE status = $2), "+
			"COALESCE(SUM(total_amount) FILTER (WHERE status = $3), 0), "+
			"COALESCE(SUM(agent_commission) FILTER (WHERE status = $4), 0) FROM bookings WHERE agent_id = $5",
	)).WithArgs("pending", "completed", "completed", "completed", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "pending", "completed", "revenue", "commission"}).
			AddRow(6, 2, 3, "900.50", "90.05"))

	stats, err := repo.Stats(context.Background(), domain.BookingsFilter{AgentID: ptr.Ptr(int64(2))})
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalBookings)
	assert.Equal(t, 2, stats.PendingBookings)
	assert.Equal(t, 3, stats.CompletedBookings)
	assert.Equal(t, "900.50", stats.CompletedRevenue.StringFixed(2))
	assert.Equal(t, "90.05", stats.CompletedCommission.StringFixed(2))
}
