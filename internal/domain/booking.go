package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// IsValid проверяет, что статус входит в допустимый набор
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking бронирование клиентов агентом в тур-пакет
// TotalAmount и AgentCommission вычисляются при создании и при изменении NumberOfPeople
type Booking struct {
	ID              int64
	TourPackageID   int64
	AgentID         int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	NumberOfPeople  int
	TotalAmount     decimal.Decimal
	AgentCommission decimal.Decimal
	Status          BookingStatus
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// HasPendingCommission returns true if the commission is not realized yet
func (b *Booking) HasPendingCommission() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	AgentID       *int64         // Только бронирования агента (опционально)
	TourPackageID *int64         // Только бронирования пакета (опционально)
	Status        *BookingStatus // Фильтр по статусу (опционально)
	FromDate      *time.Time     // DATE(created_at) >= FromDate (опционально)
	ToDate        *time.Time     // DATE(created_at) <= ToDate (опционально)
	Limit         uint64         // 0 - без ограничения
}
