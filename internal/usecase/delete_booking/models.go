package delete_booking

import "github.com/m04kA/SMC-TourBookingService/internal/domain"

// Request модель запроса на удаление бронирования
type Request struct {
	Actor     *domain.User
	BookingID int64
}

// Response результат удаления: сколько мест вернулось в пакет
type Response struct {
	BookingID      int64
	TourPackageID  int64
	ReleasedSlots  int
	AvailableSlots int
}
