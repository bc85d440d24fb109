package list_packages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages"
	"github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
)

const msgInvalidAvailable = "The available parameter must be true or false."

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

// Handle GET /api/v1/tour-packages?status=&available=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListPackagesRequest{
		Status: handlers.QueryParam(r, "status"),
	}

	if raw := handlers.QueryParam(r, "available"); raw != nil {
		onlyAvailable, err := strconv.ParseBool(*raw)
		if err != nil {
			h.logger.Warn("GET /tour-packages - Invalid available parameter: %q", *raw)
			handlers.RespondBadRequest(w, msgInvalidAvailable)
			return
		}
		req.OnlyAvailable = onlyAvailable
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, packages.ErrInvalidInput) {
			h.logger.Warn("GET /tour-packages - Invalid filters: %v", err)
			handlers.RespondValidationError(w, handlers.MsgValidationFailed, handlers.FieldErrorsFrom(err))
			return
		}
		h.logger.Error("GET /tour-packages - Failed to list packages: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tour-packages - Packages retrieved successfully: count=%d", len(result.Packages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
