package get_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TourBookingService/internal/service/reports"
)

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /dashboard - Missing user")
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), actor)
	if err != nil {
		if errors.Is(err, reports.ErrAccessDenied) {
			h.logger.Warn("GET /dashboard - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, handlers.MsgForbidden)
			return
		}
		h.logger.Error("GET /dashboard - Failed to build dashboard: user_id=%d, error=%v", actor.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
