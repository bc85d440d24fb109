package get_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages"
)

const (
	msgInvalidPackageID = "Invalid tour package ID."
	msgNotFound         = "Tour package not found."
)

type Handler struct {
	service PackageService
	logger  Logger
}

func NewHandler(service PackageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tour-packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID, err := handlers.PathID(r, "packageId")
	if err != nil {
		h.logger.Warn("GET /tour-packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	pkg, err := h.service.GetByID(r.Context(), packageID)
	if err != nil {
		if errors.Is(err, packages.ErrPackageNotFound) {
			h.logger.Warn("GET /tour-packages/{id} - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /tour-packages/{id} - Failed to get package: package_id=%d, error=%v", packageID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pkg)
}
