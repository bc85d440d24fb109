package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	errs := domain.FieldErrors{}

	if req.TourPackageID <= 0 {
		errs.Add(domain.FieldTourPackageID, domain.MsgTourPackageRequired)
	}

	domain.CustomerDetails{
		Name:           req.CustomerName,
		Email:          req.CustomerEmail,
		Phone:          req.CustomerPhone,
		NumberOfPeople: req.NumberOfPeople,
	}.Validate(errs)

	if !errs.Empty() {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	return nil
}

// insufficientSlotsError ошибка нехватки мест, привязанная к полю number_of_people
func insufficientSlotsError() error {
	return fmt.Errorf("%w: %w", ErrInsufficientSlots, domain.FieldErrors{
		domain.FieldNumberOfPeople: domain.MsgNotEnoughSlotsForPackage,
	})
}
