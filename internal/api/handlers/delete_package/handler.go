package delete_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/api/middleware"
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

// Handle DELETE /api/v1/tour-packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID, err := handlers.PathID(r, "packageId")
	if err != nil {
		h.logger.Warn("DELETE /tour-packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("DELETE /tour-packages/{id} - Missing user")
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), actor, packageID); err != nil {
		switch {
		case errors.Is(err, packages.ErrAccessDenied):
			h.logger.Warn("DELETE /tour-packages/{id} - Access denied: package_id=%d, user_id=%d", packageID, actor.ID)
			handlers.RespondForbidden(w, handlers.MsgForbidden)

		case errors.Is(err, packages.ErrPackageNotFound):
			h.logger.Warn("DELETE /tour-packages/{id} - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /tour-packages/{id} - Failed to delete package: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tour-packages/{id} - Package deleted successfully: package_id=%d, user_id=%d", packageID, actor.ID)
	w.WriteHeader(http.StatusNoContent)
}
