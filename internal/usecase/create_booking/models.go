package create_booking

import "github.com/m04kA/SMC-TourBookingService/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	Actor          *domain.User // Агент или администратор, от имени которого создается бронирование
	TourPackageID  int64
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	NumberOfPeople int
	Notes          *string
}

// Response созданное бронирование и остаток мест в пакете
type Response struct {
	Booking        *domain.Booking
	AvailableSlots int
}
