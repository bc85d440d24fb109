package update_booking

import "github.com/m04kA/SMC-TourBookingService/internal/domain"

// Request модель запроса на изменение бронирования
// Все поля перезаписываются, статус можно выставить в любое допустимое значение
type Request struct {
	Actor          *domain.User
	BookingID      int64
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	NumberOfPeople int
	Status         string
	Notes          *string
}

// Response измененное бронирование и остаток мест в пакете
type Response struct {
	Booking        *domain.Booking
	AvailableSlots int
	SlotsChanged   bool // количество человек изменилось и счетчик мест пересчитан
}
