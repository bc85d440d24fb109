package get_package

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
)

type PackageService interface {
	GetByID(ctx context.Context, id int64) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
