package delete_package

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

type PackageService interface {
	Delete(ctx context.Context, actor *domain.User, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
