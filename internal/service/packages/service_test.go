package packages

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
	"github.com/m04kA/SMC-TourBookingService/internal/testutil"
	"github.com/m04kA/SMC-TourBookingService/pkg/logger"
	"github.com/m04kA/SMC-TourBookingService/pkg/ptr"
)

func newService() (*Service, *testutil.Store) {
	store := testutil.NewStore()
	return NewService(store.Packages(), testutil.NewTxManager(store), logger.NewNop()), store
}

func validRequest() *models.PackageRequest {
	return &models.PackageRequest{
		Name:         "Alps Explorer",
		Description:  "Seven days in the Alps",
		Destinations: []string{"Zermatt", " Chamonix "},
		StartDate:    "2025-07-01",
		EndDate:      "2025-07-08",
		Price:        ptr.Ptr(decimal.RequireFromString("1299.999")),
		MaxCapacity:  ptr.Ptr(12),
		Facilities:   []string{"Hotel"},
		Status:       string(domain.PackageStatusActive),
	}
}

func fieldErrors(t *testing.T, err error) domain.FieldErrors {
	t.Helper()

	var fields domain.FieldErrors
	require.True(t, errors.As(err, &fields), "expected field errors in %v", err)
	return fields
}

func TestCreateForcesAvailableSlotsToCapacity(t *testing.T) {
	svc, _ := newService()

	req := validRequest()
	req.AvailableSlots = ptr.Ptr(3)

	resp, err := svc.Create(context.Background(), testutil.Admin(1), req)
	require.NoError(t, err)

	assert.Equal(t, 12, resp.MaxCapacity)
	assert.Equal(t, 12, resp.AvailableSlots)
	assert.Equal(t, "1300.00", resp.Price)
	assert.Equal(t, []string{"Zermatt", "Chamonix"}, resp.Destinations)
	assert.Equal(t, "2025-07-08", resp.EndDate)
}

func TestCreateRequiresAdmin(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), testutil.Agent(7), validRequest())
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Create(context.Background(), nil, validRequest())
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService()

	req := &models.PackageRequest{
		Destinations: []string{"Rome", ""},
		StartDate:    "2025-07-08",
		EndDate:      "2025-07-08",
		Price:        ptr.Ptr(decimal.RequireFromString("-1")),
		MaxCapacity:  ptr.Ptr(0),
		Status:       "archived",
	}

	_, err := svc.Create(context.Background(), testutil.Admin(1), req)
	require.ErrorIs(t, err, ErrInvalidInput)

	fields := fieldErrors(t, err)
	assert.Equal(t, msgNameRequired, fields["name"])
	assert.Equal(t, msgDescriptionRequired, fields["description"])
	assert.Equal(t, msgDestinationEmpty, fields["destinations"])
	assert.Equal(t, msgFacilitiesRequired, fields["facilities"])
	assert.Equal(t, msgEndDateAfterStart, fields["end_date"])
	assert.Equal(t, msgPriceNegative, fields["price"])
	assert.Equal(t, msgMaxCapacityMin, fields["max_capacity"])
	assert.Equal(t, msgStatusInvalid, fields["status"])
}

func TestUpdateOverridesAvailableSlotsWithinCapacity(t *testing.T) {
	svc, store := newService()
	id := store.AddPackage(testutil.AlpsPackage())

	req := validRequest()
	req.AvailableSlots = ptr.Ptr(4)

	resp, err := svc.Update(context.Background(), testutil.Admin(1), id, req)
	require.NoError(t, err)
	assert.Equal(t, 4, resp.AvailableSlots)
	assert.Equal(t, 8, resp.BookedSlots)

	req.AvailableSlots = ptr.Ptr(13)
	_, err = svc.Update(context.Background(), testutil.Admin(1), id, req)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, msgAvailableSlotsMax, fieldErrors(t, err)["available_slots"])

	req.AvailableSlots = nil
	_, err = svc.Update(context.Background(), testutil.Admin(1), id, req)
	assert.Equal(t, msgAvailableSlotsRequired, fieldErrors(t, err)["available_slots"])

	stored, _ := store.Package(id)
	assert.Equal(t, 4, stored.AvailableSlots)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newService()

	req := validRequest()
	req.AvailableSlots = ptr.Ptr(1)

	_, err := svc.Update(context.Background(), testutil.Admin(1), 404, req)
	require.ErrorIs(t, err, ErrPackageNotFound)
}

func TestDeleteCascadesBookings(t *testing.T) {
	svc, store := newService()
	id := store.AddPackage(testutil.AlpsPackage())

	_, err := store.Bookings().Create(context.Background(), &domain.Booking{TourPackageID: id, AgentID: 7, NumberOfPeople: 2})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), testutil.Agent(7), id), ErrAccessDenied)
	require.NoError(t, svc.Delete(context.Background(), testutil.Admin(1), id))
	assert.Zero(t, store.BookingsCount())

	require.ErrorIs(t, svc.Delete(context.Background(), testutil.Admin(1), id), ErrPackageNotFound)
}

func TestListOnlyAvailable(t *testing.T) {
	svc, store := newService()

	store.AddPackage(testutil.AlpsPackage())

	full := testutil.AlpsPackage()
	full.Name = "Sold out"
	full.AvailableSlots = 0
	store.AddPackage(full)

	inactive := testutil.AlpsPackage()
	inactive.Name = "Inactive"
	inactive.Status = domain.PackageStatusInactive
	store.AddPackage(inactive)

	all, err := svc.List(context.Background(), &models.ListPackagesRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Packages, 3)
	assert.Equal(t, "Inactive", all.Packages[0].Name)
	require.NotNil(t, all.Packages[0].BookingsCount)

	available, err := svc.List(context.Background(), &models.ListPackagesRequest{OnlyAvailable: true})
	require.NoError(t, err)
	require.Len(t, available.Packages, 1)
	assert.Equal(t, "Alps Explorer", available.Packages[0].Name)

	_, err = svc.List(context.Background(), &models.ListPackagesRequest{Status: ptr.Ptr("archived")})
	require.ErrorIs(t, err, ErrInvalidInput)
}
