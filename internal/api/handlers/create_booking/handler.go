package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-TourBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/create_booking"
)

const msgPackageNotFound = "Tour package not found."

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user")
		handlers.RespondUnauthorized(w, handlers.MsgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.MsgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: user_id=%d", actor.ID)
			handlers.RespondForbidden(w, handlers.MsgForbidden)

		case errors.Is(err, createBooking.ErrInvalidInput), errors.Is(err, createBooking.ErrInsufficientSlots):
			h.logger.Warn("POST /bookings - Validation failed: user_id=%d, package_id=%d, error=%v",
				actor.ID, req.TourPackageID, err)
			handlers.RespondValidationError(w, handlers.MsgValidationFailed, handlers.FieldErrorsFrom(err))

		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%d", req.TourPackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrPersistenceConflict):
			h.logger.Warn("POST /bookings - Conflict: package_id=%d", req.TourPackageID)
			handlers.RespondConflict(w, handlers.MsgConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, package_id=%d, error=%v",
				actor.ID, req.TourPackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, package_id=%d",
		result.Booking.ID, actor.ID, result.Booking.TourPackageID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
