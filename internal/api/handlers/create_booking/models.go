package create_booking

import (
	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	"github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TourPackageID  int64   `json:"tour_package_id"`
	CustomerName   string  `json:"customer_name"`
	CustomerEmail  string  `json:"customer_email"`
	CustomerPhone  string  `json:"customer_phone"`
	NumberOfPeople int     `json:"number_of_people"`
	Notes          *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Booking        *models.BookingResponse `json:"booking"`
	AvailableSlots int                     `json:"available_slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(actor *domain.User) *createBooking.Request {
	return &createBooking.Request{
		Actor:          actor,
		TourPackageID:  r.TourPackageID,
		CustomerName:   r.CustomerName,
		CustomerEmail:  r.CustomerEmail,
		CustomerPhone:  r.CustomerPhone,
		NumberOfPeople: r.NumberOfPeople,
		Notes:          r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking:        models.FromDomainBooking(resp.Booking),
		AvailableSlots: resp.AvailableSlots,
	}
}
