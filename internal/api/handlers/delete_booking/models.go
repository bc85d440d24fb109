package delete_booking

import deleteBooking "github.com/m04kA/SMC-TourBookingService/internal/usecase/delete_booking"

// DeleteBookingResponse HTTP response model
type DeleteBookingResponse struct {
	BookingID      int64 `json:"booking_id"`
	TourPackageID  int64 `json:"tour_package_id"`
	ReleasedSlots  int   `json:"released_slots"`
	AvailableSlots int   `json:"available_slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *deleteBooking.Response) *DeleteBookingResponse {
	return &DeleteBookingResponse{
		BookingID:      resp.BookingID,
		TourPackageID:  resp.TourPackageID,
		ReleasedSlots:  resp.ReleasedSlots,
		AvailableSlots: resp.AvailableSlots,
	}
}
