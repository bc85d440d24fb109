package reports

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	ListAgents(ctx context.Context, agentID *int64) ([]*domain.User, error)
	CountByRole(ctx context.Context, role domain.Role) (int, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Stats(ctx context.Context, filter domain.BookingsFilter) (domain.BookingStats, error)
}

// PackageRepository интерфейс репозитория тур-пакетов
type PackageRepository interface {
	List(ctx context.Context, filter domain.TourPackagesFilter) ([]*domain.TourPackage, error)
	Stats(ctx context.Context) (domain.PackageStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
