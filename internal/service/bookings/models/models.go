package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Actor  *domain.User
	Status *string
}

// Response модели

// BookingResponse ответ с данными бронирования
// Денежные суммы передаются строкой с двумя знаками после запятой
type BookingResponse struct {
	ID              int64   `json:"id"`
	TourPackageID   int64   `json:"tour_package_id"`
	AgentID         int64   `json:"agent_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerPhone   string  `json:"customer_phone"`
	NumberOfPeople  int     `json:"number_of_people"`
	TotalAmount     string  `json:"total_amount"`
	AgentCommission string  `json:"agent_commission"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		TourPackageID:   b.TourPackageID,
		AgentID:         b.AgentID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		NumberOfPeople:  b.NumberOfPeople,
		TotalAmount:     b.TotalAmount.StringFixed(domain.MoneyPrecision),
		AgentCommission: b.AgentCommission.StringFixed(domain.MoneyPrecision),
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
