package create_package

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
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

// Handle POST /api/v1/tour-packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("POST /tour-packages - Missing user")
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	var req models.PackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tour-packages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	pkg, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrAccessDenied):
			h.logger.Warn("POST /tour-packages - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, handlers.MsgForbidden)

		case errors.Is(err, packages.ErrInvalidInput):
			h.logger.Warn("POST /tour-packages - Validation failed: error=%v", err)
			handlers.RespondValidationError(w, handlers.MsgValidationFailed, handlers.FieldErrorsFrom(err))

		default:
			h.logger.Error("POST /tour-packages - Failed to create package: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tour-packages - Package created successfully: package_id=%d, user_id=%d", pkg.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, pkg)
}
