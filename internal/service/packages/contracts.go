package packages

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// PackageRepository интерфейс репозитория тур-пакетов
type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error)
	GetByID(ctx context.Context, id int64) (*domain.TourPackage, error)
	List(ctx context.Context, filter domain.TourPackagesFilter) ([]*domain.TourPackage, error)
	Update(ctx context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
