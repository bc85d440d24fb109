package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
// Изменения бронирований выполняют use case create_booking, update_booking и delete_booking
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Администратор видит любое бронирование, агент - только своё
func (s *Service) GetByID(ctx context.Context, id int64, actor *domain.User) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actorID(actor))

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.CanAccessBooking(booking) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actorID(actor), id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// List получает бронирования, новые сначала
// Агент получает только свои бронирования. Опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.Actor == nil {
		return nil, ErrAccessDenied
	}

	s.logger.Info("List: fetching bookings for user=%d, role=%s, status=%v", req.Actor.ID, req.Actor.Role, req.Status)

	filter := domain.BookingsFilter{AgentID: req.Actor.ScopeAgentID()}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for user=%d", *req.Status, req.Actor.ID)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.FieldErrors{
				domain.FieldStatus: domain.MsgBookingStatusInvalid,
			})
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Actor.ID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for user=%d", len(bookings), req.Actor.ID)
	return models.FromDomainBookingList(bookings), nil
}

func actorID(u *domain.User) int64 {
	if u == nil {
		return 0
	}
	return u.ID
}
