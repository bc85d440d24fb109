package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPackage(capacity, available int) *TourPackage {
	return &TourPackage{ID: 1, MaxCapacity: capacity, AvailableSlots: available, Status: PackageStatusActive}
}

func TestTourPackageReserve(t *testing.T) {
	pkg := newPackage(10, 10)

	require.NoError(t, pkg.Reserve(3))
	assert.Equal(t, 7, pkg.AvailableSlots)
	assert.Equal(t, 3, pkg.BookedSlots())

	err := pkg.Reserve(8)
	require.ErrorIs(t, err, ErrInsufficientSlots)
	assert.Equal(t, 7, pkg.AvailableSlots, "failed reserve must not mutate the counter")

	require.NoError(t, pkg.Reserve(7))
	assert.Equal(t, 0, pkg.AvailableSlots)
	assert.False(t, pkg.HasAvailableSlots())
}

func TestTourPackageReserveRejectsNonPositiveCount(t *testing.T) {
	pkg := newPackage(5, 5)

	require.ErrorIs(t, pkg.Reserve(0), ErrInvalidSlotCount)
	require.ErrorIs(t, pkg.Reserve(-2), ErrInvalidSlotCount)
	assert.Equal(t, 5, pkg.AvailableSlots)
}

func TestTourPackageReleaseClampsToCapacity(t *testing.T) {
	pkg := newPackage(10, 8)

	require.NoError(t, pkg.Release(2))
	assert.Equal(t, 10, pkg.AvailableSlots)

	require.NoError(t, pkg.Release(5))
	assert.Equal(t, 10, pkg.AvailableSlots)

	require.ErrorIs(t, pkg.Release(0), ErrInvalidSlotCount)
}

func TestTourPackageAdjust(t *testing.T) {
	pkg := newPackage(10, 7)

	require.NoError(t, pkg.Adjust(-2))
	assert.Equal(t, 5, pkg.AvailableSlots)

	require.NoError(t, pkg.Adjust(3))
	assert.Equal(t, 8, pkg.AvailableSlots)

	require.NoError(t, pkg.Adjust(0))
	assert.Equal(t, 8, pkg.AvailableSlots)

	require.ErrorIs(t, pkg.Adjust(-9), ErrInsufficientSlots)
	assert.Equal(t, 8, pkg.AvailableSlots)
}

func TestTourPackageStaysWithinBounds(t *testing.T) {
	pkg := newPackage(4, 4)
	ops := []int{-1, -2, +5, -4, -1, +1, +10, -3}

	for _, delta := range ops {
		_ = pkg.Adjust(delta)
		require.GreaterOrEqual(t, pkg.AvailableSlots, 0)
		require.LessOrEqual(t, pkg.AvailableSlots, pkg.MaxCapacity)
	}
}

func TestStatusValidation(t *testing.T) {
	assert.True(t, PackageStatusCompleted.IsValid())
	assert.False(t, PackageStatus("archived").IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, BookingStatus("no_show").IsValid())
}
