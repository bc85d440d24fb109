package inventory

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// PackageRepository интерфейс репозитория тур-пакетов
type PackageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.TourPackage, error)
	ReserveSlots(ctx context.Context, id int64, count int) (*domain.TourPackage, error)
	ReleaseSlots(ctx context.Context, id int64, count int) (*domain.TourPackage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
