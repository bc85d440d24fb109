package get_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-TourBookingService/internal/service/reports"
	"github.com/m04kA/SMC-TourBookingService/internal/service/reports/models"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports?status=&from_date=&to_date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /reports - Missing user")
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	report, err := h.service.CommissionReport(r.Context(), &models.ReportRequest{
		Actor:    actor,
		Status:   handlers.QueryParam(r, "status"),
		FromDate: handlers.QueryParam(r, "from_date"),
		ToDate:   handlers.QueryParam(r, "to_date"),
	})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			h.logger.Warn("GET /reports - Invalid filters: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondValidationError(w, handlers.MsgValidationFailed, handlers.FieldErrorsFrom(err))

		case errors.Is(err, reports.ErrAccessDenied):
			h.logger.Warn("GET /reports - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, handlers.MsgForbidden)

		default:
			h.logger.Error("GET /reports - Failed to build report: user_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports - Report built successfully: user_id=%d, agents=%d", actor.ID, len(report.ReportData))
	handlers.RespondJSON(w, http.StatusOK, report)
}
