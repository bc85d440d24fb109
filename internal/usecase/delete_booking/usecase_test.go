package delete_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/commission"
	"github.com/m04kA/SMC-TourBookingService/internal/service/inventory"
	"github.com/m04kA/SMC-TourBookingService/internal/testutil"
	"github.com/m04kA/SMC-TourBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-TourBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-TourBookingService/pkg/logger"
)

type fixture struct {
	store     *testutil.Store
	tx        *testutil.TxManager
	inventory *inventory.Service
	uc        *UseCase
	packageID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := testutil.NewStore()
	tx := testutil.NewTxManager(store)
	log := logger.NewNop()
	inv := inventory.NewService(store.Packages(), log)

	return &fixture{
		store:     store,
		tx:        tx,
		inventory: inv,
		uc:        NewUseCase(store.Bookings(), inv, tx, testutil.NewMetricsRecorder(), log),
		packageID: store.AddPackage(testutil.AlpsPackage()),
	}
}

func (f *fixture) createBooking(t *testing.T, agent *domain.User, people int) *domain.Booking {
	t.Helper()

	log := logger.NewNop()
	uc := create_booking.NewUseCase(
		f.store.Bookings(), f.inventory, commission.NewCalculator(), f.tx, testutil.NewMetricsRecorder(), log,
	)

	resp, err := uc.Execute(context.Background(), &create_booking.Request{
		Actor:          agent,
		TourPackageID:  f.packageID,
		CustomerName:   "Jane Doe",
		CustomerEmail:  "jane@example.com",
		CustomerPhone:  "+1 555 0100",
		NumberOfPeople: people,
	})
	require.NoError(t, err)
	return resp.Booking
}

func (f *fixture) availableSlots(t *testing.T) int {
	t.Helper()

	pkg, ok := f.store.Package(f.packageID)
	require.True(t, ok)
	return pkg.AvailableSlots
}

// Полный цикл: создание на 3, увеличение до 5, удаление
func TestBookingLifecycleRestoresSlots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	agent := testutil.Agent(7)

	booking := f.createBooking(t, agent, 3)
	assert.Equal(t, 7, f.availableSlots(t))

	update := update_booking.NewUseCase(
		f.store.Bookings(), f.inventory, commission.NewCalculator(), f.tx, testutil.NewMetricsRecorder(), logger.NewNop(),
	)
	updated, err := update.Execute(ctx, &update_booking.Request{
		Actor:          agent,
		BookingID:      booking.ID,
		CustomerName:   booking.CustomerName,
		CustomerEmail:  booking.CustomerEmail,
		CustomerPhone:  booking.CustomerPhone,
		NumberOfPeople: 5,
		Status:         string(domain.StatusConfirmed),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, f.availableSlots(t))
	assert.Equal(t, "500.00", updated.Booking.TotalAmount.StringFixed(2))

	resp, err := f.uc.Execute(ctx, &Request{Actor: agent, BookingID: booking.ID})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.ReleasedSlots)
	assert.Equal(t, 10, resp.AvailableSlots)
	assert.Equal(t, 10, f.availableSlots(t))
	assert.Zero(t, f.store.BookingsCount())
}

func TestDeleteCancelledBookingReleasesSlots(t *testing.T) {
	f := newFixture(t)
	booking := f.createBooking(t, testutil.Agent(7), 4)

	_, err := f.store.Bookings().Update(context.Background(), &domain.Booking{
		ID:             booking.ID,
		NumberOfPeople: booking.NumberOfPeople,
		Status:         domain.StatusCancelled,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, f.availableSlots(t))

	_, err = f.uc.Execute(context.Background(), &Request{Actor: testutil.Admin(1), BookingID: booking.ID})
	require.NoError(t, err)
	assert.Equal(t, 10, f.availableSlots(t))
}

func TestDeleteBookingReleaseIsClampedToCapacity(t *testing.T) {
	f := newFixture(t)
	booking := f.createBooking(t, testutil.Agent(7), 4)

	// Администратор вручную вернул счетчик к максимуму
	f.store.UpdatePackage(f.packageID, func(pkg *domain.TourPackage) {
		pkg.AvailableSlots = pkg.MaxCapacity
	})

	resp, err := f.uc.Execute(context.Background(), &Request{Actor: testutil.Admin(1), BookingID: booking.ID})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.AvailableSlots)
	assert.Equal(t, 10, f.availableSlots(t))
}

func TestDeleteBookingOtherAgentIsForbidden(t *testing.T) {
	f := newFixture(t)
	booking := f.createBooking(t, testutil.Agent(7), 2)

	_, err := f.uc.Execute(context.Background(), &Request{Actor: testutil.Agent(8), BookingID: booking.ID})
	require.ErrorIs(t, err, ErrAccessDenied)

	assert.Equal(t, 8, f.availableSlots(t))
	assert.Equal(t, 1, f.store.BookingsCount())
}

func TestDeleteBookingNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{Actor: testutil.Admin(1), BookingID: 404})
	require.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{Actor: testutil.Admin(1), BookingID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}

type failingDeleteRepository struct {
	*testutil.BookingRepository
}

func (r failingDeleteRepository) Delete(context.Context, int64) error {
	return errors.New("delete failed")
}

func TestDeleteBookingFailureKeepsSlots(t *testing.T) {
	f := newFixture(t)
	booking := f.createBooking(t, testutil.Agent(7), 3)

	f.uc.bookingRepo = failingDeleteRepository{BookingRepository: f.store.Bookings()}

	_, err := f.uc.Execute(context.Background(), &Request{Actor: testutil.Agent(7), BookingID: booking.ID})
	require.ErrorIs(t, err, ErrInternal)

	assert.Equal(t, 7, f.availableSlots(t))
	assert.Equal(t, 1, f.store.BookingsCount())
}
