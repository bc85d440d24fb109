package health_check

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
)

// Response тело ответа health check
type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

// Handle GET /health-check
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}
