package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	packageRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/tourpackage"
)

// Service учет свободных мест тур-пакетов
// Все изменения счетчика выполняются одним условным UPDATE,
// поэтому 0 <= available_slots <= max_capacity сохраняется и при конкурентных вызовах.
// Вызывается внутри транзакции use case, чтобы списание мест и запись бронирования фиксировались вместе.
type Service struct {
	packageRepo PackageRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса учета мест
func NewService(packageRepo PackageRepository, logger Logger) *Service {
	return &Service{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// Reserve занимает count мест в пакете
// Возвращает domain.ErrInsufficientSlots, если свободных мест меньше count; счетчик при этом не меняется
func (s *Service) Reserve(ctx context.Context, packageID int64, count int) (*domain.TourPackage, error) {
	if count < 1 {
		return nil, domain.ErrInvalidSlotCount
	}

	pkg, err := s.packageRepo.ReserveSlots(ctx, packageID, count)
	if err != nil {
		switch {
		case errors.Is(err, packageRepo.ErrPackageNotFound):
			s.logger.Warn("Reserve: package id=%d not found", packageID)
			return nil, ErrPackageNotFound
		case errors.Is(err, packageRepo.ErrInsufficientSlots):
			s.logger.Warn("Reserve: not enough slots in package id=%d, requested=%d", packageID, count)
			return nil, domain.ErrInsufficientSlots
		}
		s.logger.Error("Reserve: repository error for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: Reserve - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Reserve: package id=%d, reserved=%d, available=%d/%d",
		packageID, count, pkg.AvailableSlots, pkg.MaxCapacity)
	return pkg, nil
}

// Release возвращает count мест в пакет, не поднимая счетчик выше max_capacity
func (s *Service) Release(ctx context.Context, packageID int64, count int) (*domain.TourPackage, error) {
	if count < 1 {
		return nil, domain.ErrInvalidSlotCount
	}

	pkg, err := s.packageRepo.ReleaseSlots(ctx, packageID, count)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("Release: package id=%d not found", packageID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Release: repository error for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: Release - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Release: package id=%d, released=%d, available=%d/%d",
		packageID, count, pkg.AvailableSlots, pkg.MaxCapacity)
	return pkg, nil
}

// Adjust применяет изменение количества мест:
// delta < 0 занимает -delta мест, delta > 0 освобождает delta мест, delta == 0 ничего не меняет
func (s *Service) Adjust(ctx context.Context, packageID int64, delta int) (*domain.TourPackage, error) {
	switch {
	case delta < 0:
		return s.Reserve(ctx, packageID, -delta)
	case delta > 0:
		return s.Release(ctx, packageID, delta)
	}

	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Adjust: repository error for package id=%d: %v", packageID, err)
		return nil, fmt.Errorf("%w: Adjust - repository error: %w", ErrInternal, err)
	}

	return pkg, nil
}
