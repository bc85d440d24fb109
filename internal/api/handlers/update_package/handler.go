package update_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
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

// Handle PUT /api/v1/tour-packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	packageID, err := handlers.PathID(r, "packageId")
	if err != nil {
		h.logger.Warn("PUT /tour-packages/{id} - Invalid package ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPackageID)
		return
	}

	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("PUT /tour-packages/{id} - Missing user")
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	var req models.PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /tour-packages/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	pkg, err := h.service.Update(r.Context(), actor, packageID, &req)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrAccessDenied):
			h.logger.Warn("PUT /tour-packages/{id} - Access denied: package_id=%d, user_id=%d", packageID, actor.ID)
			handlers.RespondForbidden(w, handlers.MsgForbidden)

		case errors.Is(err, packages.ErrPackageNotFound):
			h.logger.Warn("PUT /tour-packages/{id} - Package not found: package_id=%d", packageID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, packages.ErrInvalidInput):
			h.logger.Warn("PUT /tour-packages/{id} - Validation failed: package_id=%d, error=%v", packageID, err)
			handlers.RespondValidationError(w, handlers.MsgValidationFailed, handlers.FieldErrorsFrom(err))

		case errors.Is(err, packages.ErrPersistenceConflict):
			h.logger.Warn("PUT /tour-packages/{id} - Conflict: package_id=%d", packageID)
			handlers.RespondConflict(w, handlers.MsgConflict)

		default:
			h.logger.Error("PUT /tour-packages/{id} - Failed to update package: package_id=%d, error=%v", packageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /tour-packages/{id} - Package updated successfully: package_id=%d, user_id=%d", packageID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, pkg)
}
