package packages

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	packageRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/tourpackage"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
	"github.com/m04kA/SMC-TourBookingService/pkg/txmanager"
)

// Service сервис управления тур-пакетами
// Изменять пакеты может только администратор, просматривать - любой пользователь
type Service struct {
	packageRepo PackageRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса тур-пакетов
func NewService(packageRepo PackageRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		packageRepo: packageRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает тур-пакет, available_slots приравнивается к max_capacity
func (s *Service) Create(ctx context.Context, actor *domain.User, req *models.PackageRequest) (*models.PackageResponse, error) {
	if !actor.CanManagePackages() {
		s.logger.Warn("Create: user=%d is not allowed to manage packages", actorID(actor))
		return nil, ErrAccessDenied
	}

	pkg, err := buildPackage(req, false)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.packageRepo.Create(ctx, pkg)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: package id=%d created, capacity=%d", created.ID, created.MaxCapacity)
	return models.FromDomainPackage(created), nil
}

// Update перезаписывает все поля тур-пакета, включая ручную установку available_slots
// Пакет блокируется на время транзакции, чтобы не пересечься с бронированиями
func (s *Service) Update(ctx context.Context, actor *domain.User, id int64, req *models.PackageRequest) (*models.PackageResponse, error) {
	if !actor.CanManagePackages() {
		s.logger.Warn("Update: user=%d is not allowed to manage packages", actorID(actor))
		return nil, ErrAccessDenied
	}

	pkg, err := buildPackage(req, true)
	if err != nil {
		s.logger.Warn("Update: validation failed for package id=%d: %v", id, err)
		return nil, err
	}

	var updated *domain.TourPackage
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := s.packageRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		pkg.ID = existing.ID
		updated, err = s.packageRepo.Update(txCtx, pkg)
		return err
	})

	if err != nil {
		switch {
		case errors.Is(err, packageRepo.ErrPackageNotFound):
			s.logger.Warn("Update: package id=%d not found", id)
			return nil, ErrPackageNotFound
		case errors.Is(err, txmanager.ErrConflict):
			s.logger.Warn("Update: concurrent modification of package id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrPersistenceConflict, err)
		}
		s.logger.Error("Update: repository error for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: package id=%d updated, available=%d/%d", id, updated.AvailableSlots, updated.MaxCapacity)
	return models.FromDomainPackage(updated), nil
}

// Delete удаляет тур-пакет вместе с его бронированиями
func (s *Service) Delete(ctx context.Context, actor *domain.User, id int64) error {
	if !actor.CanManagePackages() {
		s.logger.Warn("Delete: user=%d is not allowed to manage packages", actorID(actor))
		return ErrAccessDenied
	}

	if err := s.packageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("Delete: package id=%d not found", id)
			return ErrPackageNotFound
		}
		s.logger.Error("Delete: repository error for package id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: package id=%d deleted", id)
	return nil
}

// GetByID получает тур-пакет по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PackageResponse, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, packageRepo.ErrPackageNotFound) {
			s.logger.Warn("GetByID: package id=%d not found", id)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("GetByID: repository error for package id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPackage(pkg), nil
}

// List получает тур-пакеты, новые сначала, с количеством бронирований
func (s *Service) List(ctx context.Context, req *models.ListPackagesRequest) (*models.PackageListResponse, error) {
	filter := domain.TourPackagesFilter{
		OnlyAvailable: req.OnlyAvailable,
		Limit:         req.Limit,
	}

	if req.Status != nil {
		status := domain.PackageStatus(*req.Status)
		if !status.IsValid() {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.FieldErrors{"status": msgStatusInvalid})
		}
		filter.Status = &status
	}

	packages, err := s.packageRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d packages, only_available=%t", len(packages), req.OnlyAvailable)
	return models.FromDomainPackageList(packages), nil
}

func actorID(u *domain.User) int64 {
	if u == nil {
		return 0
	}
	return u.ID
}
