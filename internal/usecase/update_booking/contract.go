package update_booking

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/commission"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// PackageInventory интерфейс учета свободных мест тур-пакета
type PackageInventory interface {
	Adjust(ctx context.Context, packageID int64, delta int) (*domain.TourPackage, error)
}

// CommissionCalculator интерфейс расчета суммы и комиссии
type CommissionCalculator interface {
	ComputeAmounts(unitPrice decimal.Decimal, headcount int) commission.Amounts
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс доменных метрик
type Metrics interface {
	RecordBookingOperation(operation, result string)
	RecordSlotRejection(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
