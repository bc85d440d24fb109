package update_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	errs := domain.FieldErrors{}

	domain.CustomerDetails{
		Name:           req.CustomerName,
		Email:          req.CustomerEmail,
		Phone:          req.CustomerPhone,
		NumberOfPeople: req.NumberOfPeople,
	}.Validate(errs)

	status := strings.TrimSpace(req.Status)
	switch {
	case status == "":
		errs.Add(domain.FieldStatus, domain.MsgBookingStatusRequired)
	case !domain.BookingStatus(status).IsValid():
		errs.Add(domain.FieldStatus, domain.MsgBookingStatusInvalid)
	}

	if !errs.Empty() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	return nil
}

// insufficientSlotsError ошибка нехватки мест, привязанная к полю number_of_people
func insufficientSlotsError() error {
	return fmt.Errorf("%w: %w", ErrInsufficientSlots, domain.FieldErrors{
		domain.FieldNumberOfPeople: domain.MsgNotEnoughSlotsForChange,
	})
}
