package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/user"
)

// SetBookingCreatedAt переносит бронирование на другую дату (для фильтров отчета)
func (s *Store) SetBookingCreatedAt(id int64, createdAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return
	}
	b.CreatedAt = createdAt
	s.bookings[id] = b
}

// Stats общее количество пакетов и количество активных
func (r *PackageRepository) Stats(_ context.Context) (domain.PackageStats, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var stats domain.PackageStats
	for _, pkg := range r.store.packages {
		stats.TotalPackages++
		if pkg.IsActive() {
			stats.ActivePackages++
		}
	}
	return stats, nil
}

// Stats агрегаты по бронированиям с учетом фильтра
func (r *BookingRepository) Stats(ctx context.Context, filter domain.BookingsFilter) (domain.BookingStats, error) {
	filter.Limit = 0
	bookings, err := r.List(ctx, filter)
	if err != nil {
		return domain.BookingStats{}, err
	}

	stats := domain.BookingStats{
		CompletedRevenue:    decimal.Zero,
		CompletedCommission: decimal.Zero,
	}
	for _, b := range bookings {
		stats.TotalBookings++
		switch b.Status {
		case domain.StatusPending:
			stats.PendingBookings++
		case domain.StatusCompleted:
			stats.CompletedBookings++
			stats.CompletedRevenue = stats.CompletedRevenue.Add(b.TotalAmount)
			stats.CompletedCommission = stats.CompletedCommission.Add(b.AgentCommission)
		}
	}
	return stats, nil
}

// UserRepository in-memory реализация репозитория пользователей
type UserRepository struct {
	users map[int64]domain.User
}

// NewUserRepository создает репозиторий с переданными пользователями
func NewUserRepository(users ...*domain.User) *UserRepository {
	repo := &UserRepository{users: make(map[int64]domain.User, len(users))}
	for _, u := range users {
		repo.users[u.ID] = *u
	}
	return repo
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return &u, nil
}

// ListAgents агенты по имени, agentID ограничивает выборку одним агентом
func (r *UserRepository) ListAgents(_ context.Context, agentID *int64) ([]*domain.User, error) {
	result := make([]*domain.User, 0)
	for _, u := range r.users {
		if u.Role != domain.RoleAgent {
			continue
		}
		if agentID != nil && u.ID != *agentID {
			continue
		}
		u := u
		result = append(result, &u)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *UserRepository) CountByRole(_ context.Context, role domain.Role) (int, error) {
	count := 0
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}
