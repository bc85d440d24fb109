package update_booking

import (
	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	CustomerName   string  `json:"customer_name"`
	CustomerEmail  string  `json:"customer_email"`
	CustomerPhone  string  `json:"customer_phone"`
	NumberOfPeople int     `json:"number_of_people"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes,omitempty"`
}

// UpdateBookingResponse HTTP response model
type UpdateBookingResponse struct {
	Booking        *models.BookingResponse `json:"booking"`
	AvailableSlots int                     `json:"available_slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(actor *domain.User, bookingID int64) *updateBooking.Request {
	return &updateBooking.Request{
		Actor:          actor,
		BookingID:      bookingID,
		CustomerName:   r.CustomerName,
		CustomerEmail:  r.CustomerEmail,
		CustomerPhone:  r.CustomerPhone,
		NumberOfPeople: r.NumberOfPeople,
		Status:         r.Status,
		Notes:          r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *UpdateBookingResponse {
	return &UpdateBookingResponse{
		Booking:        models.FromDomainBooking(resp.Booking),
		AvailableSlots: resp.AvailableSlots,
	}
}
