package update_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/commission"
	"github.com/m04kA/SMC-TourBookingService/internal/service/inventory"
	"github.com/m04kA/SMC-TourBookingService/internal/testutil"
	"github.com/m04kA/SMC-TourBookingService/pkg/logger"
)

type fixture struct {
	store     *testutil.Store
	tx        *testutil.TxManager
	metrics   *testutil.MetricsRecorder
	uc        *UseCase
	packageID int64
	bookingID int64
}

// newFixture пакет на 10 мест по 100.00 и бронирование агента 7 на 3 человека (7 мест свободно)
func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := testutil.NewStore()
	tx := testutil.NewTxManager(store)
	rec := testutil.NewMetricsRecorder()
	log := logger.NewNop()

	pkg := testutil.AlpsPackage()
	pkg.AvailableSlots = 7
	packageID := store.AddPackage(pkg)

	created, err := store.Bookings().Create(context.Background(), &domain.Booking{
		TourPackageID:   packageID,
		AgentID:         7,
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "+1 555 0100",
		NumberOfPeople:  3,
		TotalAmount:     decimal.RequireFromString("300.00"),
		AgentCommission: decimal.RequireFromString("30.00"),
		Status:          domain.StatusPending,
	})
	require.NoError(t, err)

	uc := NewUseCase(
		store.Bookings(),
		inventory.NewService(store.Packages(), log),
		commission.NewCalculator(),
		tx,
		rec,
		log,
	)

	return &fixture{store: store, tx: tx, metrics: rec, uc: uc, packageID: packageID, bookingID: created.ID}
}

func (f *fixture) request(actor *domain.User, people int) *Request {
	return &Request{
		Actor:          actor,
		BookingID:      f.bookingID,
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "+1 555 0100",
		NumberOfPeople: people,
		Status:         string(domain.StatusConfirmed),
	}
}

func (f *fixture) availableSlots(t *testing.T) int {
	t.Helper()

	pkg, ok := f.store.Package(f.packageID)
	require.True(t, ok)
	return pkg.AvailableSlots
}

func TestUpdateBookingGrowsGroup(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request(testutil.Agent(7), 5))
	require.NoError(t, err)

	assert.True(t, resp.SlotsChanged)
	assert.Equal(t, 5, resp.AvailableSlots)
	assert.Equal(t, 5, f.availableSlots(t))
	assert.Equal(t, "500.00", resp.Booking.TotalAmount.StringFixed(2))
	assert.Equal(t, "50.00", resp.Booking.AgentCommission.StringFixed(2))
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
}

func TestUpdateBookingShrinksGroup(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request(testutil.Admin(1), 1))
	require.NoError(t, err)

	assert.Equal(t, 9, f.availableSlots(t))
	assert.Equal(t, "100.00", resp.Booking.TotalAmount.StringFixed(2))
	assert.Equal(t, "10.00", resp.Booking.AgentCommission.StringFixed(2))
}

func TestUpdateBookingSameHeadcountKeepsSlotsAndAmounts(t *testing.T) {
	f := newFixture(t)

	// Цена пакета изменилась, но без изменения количества человек суммы не пересчитываются
	f.store.UpdatePackage(f.packageID, func(pkg *domain.TourPackage) {
		pkg.Price = decimal.RequireFromString("150.00")
	})

	req := f.request(testutil.Agent(7), 3)
	req.CustomerName = "Jane Smith"

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.SlotsChanged)
	assert.Equal(t, 7, resp.AvailableSlots)
	assert.Equal(t, 7, f.availableSlots(t))
	assert.Equal(t, "300.00", resp.Booking.TotalAmount.StringFixed(2))
	assert.Equal(t, "30.00", resp.Booking.AgentCommission.StringFixed(2))
	assert.Equal(t, "Jane Smith", resp.Booking.CustomerName)
}

func TestUpdateBookingInsufficientSlots(t *testing.T) {
	f := newFixture(t)

	req := f.request(testutil.Agent(7), 11)
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInsufficientSlots)

	var fields domain.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, domain.MsgNotEnoughSlotsForChange, fields[domain.FieldNumberOfPeople])

	assert.Equal(t, 7, f.availableSlots(t))
	stored, _ := f.store.Booking(f.bookingID)
	assert.Equal(t, 3, stored.NumberOfPeople)
	assert.Equal(t, domain.StatusPending, stored.Status, "rejected update must not apply other fields")
	assert.Equal(t, 1, f.metrics.Rejections(operation))
}

func TestUpdateBookingOtherAgentIsForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), f.request(testutil.Agent(8), 5))
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 7, f.availableSlots(t))
}

func TestUpdateBookingNotFound(t *testing.T) {
	f := newFixture(t)

	req := f.request(testutil.Admin(1), 2)
	req.BookingID = 404

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateBookingValidatesStatus(t *testing.T) {
	f := newFixture(t)

	req := f.request(testutil.Agent(7), 3)
	req.Status = "archived"

	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidInput)

	var fields domain.FieldErrors
	require.True(t, errors.As(err, &fields))
	assert.Equal(t, domain.MsgBookingStatusInvalid, fields[domain.FieldStatus])
	assert.Zero(t, f.tx.Calls)
}

func TestUpdateBookingAnyStatusTransitionAllowed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, status := range []domain.BookingStatus{
		domain.StatusCompleted,
		domain.StatusPending,
		domain.StatusCancelled,
		domain.StatusConfirmed,
	} {
		req := f.request(testutil.Agent(7), 3)
		req.Status = string(status)

		resp, err := f.uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, status, resp.Booking.Status)
	}

	// Отмена не возвращает места
	assert.Equal(t, 7, f.availableSlots(t))
}

func TestUpdateBookingConflict(t *testing.T) {
	f := newFixture(t)
	f.tx.Conflicts = 1

	_, err := f.uc.Execute(context.Background(), f.request(testutil.Agent(7), 5))
	require.ErrorIs(t, err, ErrPersistenceConflict)
	assert.Equal(t, 7, f.availableSlots(t))
}
