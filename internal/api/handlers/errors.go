package handlers

import (
	"errors"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// Общие сообщения ответов
const (
	MsgInvalidRequestBody = "Invalid request body."
	MsgValidationFailed   = "The given data was invalid."
	MsgUnauthorized       = "Unauthenticated."
	MsgForbidden          = "This action is unauthorized."
	MsgConflict           = "The resource was modified concurrently, please retry."
)

// FieldErrorsFrom достает ошибки по полям из цепочки ошибок
func FieldErrorsFrom(err error) domain.FieldErrors {
	var fields domain.FieldErrors
	if errors.As(err, &fields) {
		return fields
	}
	return domain.FieldErrors{}
}
