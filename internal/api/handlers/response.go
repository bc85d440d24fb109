package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

const msgInternalError = "internal server error"

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse тело ответа 422 с ошибками по полям
type ValidationErrorResponse struct {
	Message string             `json:"message"`
	Errors  domain.FieldErrors `json:"errors"`
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ошибку в формате {"message": ...}
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidationError 422 с ошибками по полям
func RespondValidationError(w http.ResponseWriter, message string, errs domain.FieldErrors) {
	if errs == nil {
		errs = domain.FieldErrors{}
	}
	RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Message: message,
		Errors:  errs,
	})
}
