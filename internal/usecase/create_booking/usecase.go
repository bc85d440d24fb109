package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/inventory"
	"github.com/m04kA/SMC-TourBookingService/pkg/txmanager"
)

const operation = "create"

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Списание мест и запись бронирования выполняются в одной сериализуемой транзакции:
// при нехватке мест ничего не сохраняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !req.Actor.CanCreateBookings() {
		uc.logger.Warn("CreateBooking: user is not allowed to create bookings")
		uc.metrics.RecordBookingOperation(operation, "forbidden")
		return nil, ErrAccessDenied
	}

	uc.logger.Info("CreateBooking: agent=%d, package=%d, people=%d",
		req.Actor.ID, req.TourPackageID, req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBookingOperation(operation, "invalid")
		return nil, err
	}

	var (
		result    *domain.Booking
		available int
	)

	// 2. Списываем места и сохраняем бронирование в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Условное списание мест: при нехватке счетчик не меняется
		pkg, err := uc.inventory.Reserve(txCtx, req.TourPackageID, req.NumberOfPeople)
		if err != nil {
			switch {
			case errors.Is(err, inventory.ErrPackageNotFound):
				return ErrPackageNotFound
			case errors.Is(err, domain.ErrInsufficientSlots):
				return insufficientSlotsError()
			}
			return fmt.Errorf("%w: failed to reserve slots: %w", ErrInternal, err)
		}

		// 2.2. Считаем сумму и комиссию по цене пакета
		amounts := uc.calculator.ComputeAmounts(pkg.Price, req.NumberOfPeople)

		// 2.3. Сохраняем бронирование
		booking := &domain.Booking{
			TourPackageID:   pkg.ID,
			AgentID:         req.Actor.ID,
			CustomerName:    strings.TrimSpace(req.CustomerName),
			CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
			CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
			NumberOfPeople:  req.NumberOfPeople,
			TotalAmount:     amounts.TotalAmount,
			AgentCommission: amounts.Commission,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		available = pkg.AvailableSlots
		return nil
	})

	if err != nil {
		return nil, uc.handleError(req, err)
	}

	uc.metrics.RecordBookingOperation(operation, "success")
	uc.logger.Info("CreateBooking: successfully created booking id=%d, package=%d, available=%d",
		result.ID, result.TourPackageID, available)

	return &Response{
		Booking:        result,
		AvailableSlots: available,
	}, nil
}

// handleError логирует ошибку транзакции и приводит её к ошибке use case
func (uc *UseCase) handleError(req *Request, err error) error {
	switch {
	case errors.Is(err, ErrPackageNotFound):
		uc.logger.Warn("CreateBooking: package id=%d not found", req.TourPackageID)
		uc.metrics.RecordBookingOperation(operation, "not_found")
		return err

	case errors.Is(err, ErrInsufficientSlots):
		uc.logger.Warn("CreateBooking: not enough slots in package id=%d for %d people",
			req.TourPackageID, req.NumberOfPeople)
		uc.metrics.RecordBookingOperation(operation, "insufficient_slots")
		uc.metrics.RecordSlotRejection(operation)
		return err

	case errors.Is(err, txmanager.ErrConflict):
		uc.logger.Warn("CreateBooking: concurrent modification of package id=%d: %v", req.TourPackageID, err)
		uc.metrics.RecordBookingOperation(operation, "conflict")
		return fmt.Errorf("%w: %v", ErrPersistenceConflict, err)
	}

	uc.logger.Error("CreateBooking: failed to create booking in package id=%d: %v", req.TourPackageID, err)
	uc.metrics.RecordBookingOperation(operation, "error")
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
