package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TourBookingService/pkg/txmanager"
)

const operation = "update"

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo BookingRepository
	inventory   PackageInventory
	calculator  CommissionCalculator
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	inventory PackageInventory,
	calculator CommissionCalculator,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		inventory:   inventory,
		calculator:  calculator,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case изменения бронирования
// При изменении количества человек разница применяется к счетчику мест пакета,
// а сумма и комиссия пересчитываются по текущей цене пакета.
// Бронирование и пакет сохраняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Actor == nil {
		uc.metrics.RecordBookingOperation(operation, "forbidden")
		return nil, ErrAccessDenied
	}

	uc.logger.Info("UpdateBooking: booking=%d, user=%d, people=%d, status=%s",
		req.BookingID, req.Actor.ID, req.NumberOfPeople, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		uc.metrics.RecordBookingOperation(operation, "invalid")
		return nil, err
	}

	var result Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Блокируем бронирование на время транзакции
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 3. Проверяем права до любых изменений
		if !req.Actor.CanAccessBooking(booking) {
			return ErrAccessDenied
		}

		// 4. Применяем разницу в количестве человек к счетчику мест
		// delta > 0 - места освобождаются, delta < 0 - занимаются, 0 - счетчик не меняется
		delta := booking.NumberOfPeople - req.NumberOfPeople
		pkg, err := uc.inventory.Adjust(txCtx, booking.TourPackageID, delta)
		if err != nil {
			if errors.Is(err, domain.ErrInsufficientSlots) {
				return insufficientSlotsError()
			}
			return fmt.Errorf("%w: failed to adjust slots: %w", ErrInternal, err)
		}
		result.AvailableSlots = pkg.AvailableSlots

		// Сумма и комиссия пересчитываются только при изменении количества человек
		if delta != 0 {
			amounts := uc.calculator.ComputeAmounts(pkg.Price, req.NumberOfPeople)
			booking.NumberOfPeople = req.NumberOfPeople
			booking.TotalAmount = amounts.TotalAmount
			booking.AgentCommission = amounts.Commission
			result.SlotsChanged = true
		}

		// 5. Остальные поля перезаписываются без условий
		booking.CustomerName = strings.TrimSpace(req.CustomerName)
		booking.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
		booking.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
		booking.Status = domain.BookingStatus(strings.TrimSpace(req.Status))
		booking.Notes = req.Notes

		updated, err := uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result.Booking = updated
		return nil
	})

	if err != nil {
		return nil, uc.handleError(req, err)
	}

	uc.metrics.RecordBookingOperation(operation, "success")
	uc.logger.Info("UpdateBooking: successfully updated booking id=%d, slots_changed=%t",
		result.Booking.ID, result.SlotsChanged)

	return &result, nil
}

// handleError логирует ошибку транзакции и приводит её к ошибке use case
func (uc *UseCase) handleError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
		uc.metrics.RecordBookingOperation(operation, "not_found")
		return err

	case errors.Is(err, ErrAccessDenied):
		uc.logger.Warn("UpdateBooking: access denied for user=%d to booking id=%d", req.Actor.ID, req.BookingID)
		uc.metrics.RecordBookingOperation(operation, "forbidden")
		return err

	case errors.Is(err, ErrInsufficientSlots):
		uc.logger.Warn("UpdateBooking: not enough slots to grow booking id=%d to %d people",
			req.BookingID, req.NumberOfPeople)
		uc.metrics.RecordBookingOperation(operation, "insufficient_slots")
		uc.metrics.RecordSlotRejection(operation)
		return err

	case errors.Is(err, txmanager.ErrConflict):
		uc.logger.Warn("UpdateBooking: concurrent modification of booking id=%d: %v", req.BookingID, err)
		uc.metrics.RecordBookingOperation(operation, "conflict")
		return fmt.Errorf("%w: %v", ErrPersistenceConflict, err)
	}

	uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
	uc.metrics.RecordBookingOperation(operation, "error")
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
