package delete_booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TourBookingService/pkg/txmanager"
)

const operation = "delete"

// UseCase use case для удаления бронирования
type UseCase struct {
	bookingRepo BookingRepository
	inventory   PackageInventory
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	inventory PackageInventory,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		inventory:   inventory,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute удаляет бронирование и возвращает его места в пакет
// Места возвращаются независимо от статуса, в том числе для отмененных бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Actor == nil {
		uc.metrics.RecordBookingOperation(operation, "forbidden")
		return nil, ErrAccessDenied
	}
	if req.BookingID <= 0 {
		uc.metrics.RecordBookingOperation(operation, "invalid")
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	uc.logger.Info("DeleteBooking: booking=%d, user=%d", req.BookingID, req.Actor.ID)

	var result Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !req.Actor.CanAccessBooking(booking) {
			return ErrAccessDenied
		}

		// Возврат мест ограничен сверху max_capacity
		pkg, err := uc.inventory.Release(txCtx, booking.TourPackageID, booking.NumberOfPeople)
		if err != nil {
			return fmt.Errorf("%w: failed to release slots: %w", ErrInternal, err)
		}

		if err := uc.bookingRepo.Delete(txCtx, booking.ID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to delete booking: %w", ErrInternal, err)
		}

		result = Response{
			BookingID:      booking.ID,
			TourPackageID:  booking.TourPackageID,
			ReleasedSlots:  booking.NumberOfPeople,
			AvailableSlots: pkg.AvailableSlots,
		}
		return nil
	})

	if err != nil {
		return nil, uc.handleError(req, err)
	}

	uc.metrics.RecordBookingOperation(operation, "success")
	uc.logger.Info("DeleteBooking: successfully deleted booking id=%d, released=%d, available=%d",
		result.BookingID, result.ReleasedSlots, result.AvailableSlots)

	return &result, nil
}

// handleError логирует ошибку транзакции и приводит её к ошибке use case
func (uc *UseCase) handleError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		uc.logger.Warn("DeleteBooking: booking id=%d not found", req.BookingID)
		uc.metrics.RecordBookingOperation(operation, "not_found")
		return err

	case errors.Is(err, ErrAccessDenied):
		uc.logger.Warn("DeleteBooking: access denied for user=%d to booking id=%d", req.Actor.ID, req.BookingID)
		uc.metrics.RecordBookingOperation(operation, "forbidden")
		return err

	case errors.Is(err, txmanager.ErrConflict):
		uc.logger.Warn("DeleteBooking: concurrent modification of booking id=%d: %v", req.BookingID, err)
		uc.metrics.RecordBookingOperation(operation, "conflict")
		return fmt.Errorf("%w: %v", ErrPersistenceConflict, err)
	}

	uc.logger.Error("DeleteBooking: failed to delete booking id=%d: %v", req.BookingID, err)
	uc.metrics.RecordBookingOperation(operation, "error")
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
