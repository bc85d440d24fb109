package list_packages

import (
	"context"

	"github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
)

type PackageService interface {
	List(ctx context.Context, req *models.ListPackagesRequest) (*models.PackageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
