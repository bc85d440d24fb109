package delete_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/api/middleware"
	deleteBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/delete_booking"
)

const (
	msgInvalidBookingID = "Invalid booking ID."
	msgNotFound         = "Booking not found."
)

type Handler struct {
	useCase DeleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase DeleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("DELETE /bookings/{id} - Missing user")
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &deleteBooking.Request{Actor: actor, BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, deleteBooking.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deleteBooking.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, actor.ID)
			handlers.RespondForbidden(w, handlers.MsgForbidden)

		case errors.Is(err, deleteBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id} - Invalid input: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, deleteBooking.ErrPersistenceConflict):
			h.logger.Warn("DELETE /bookings/{id} - Conflict: booking_id=%d", bookingID)
			handlers.RespondConflict(w, handlers.MsgConflict)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted successfully: booking_id=%d, released_slots=%d",
		bookingID, result.ReleasedSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
