package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
)

// Request модели

// PackageRequest данные тур-пакета для создания и изменения
// На создании AvailableSlots игнорируется и приравнивается к MaxCapacity
type PackageRequest struct {
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Destinations   []string         `json:"destinations"`
	StartDate      string           `json:"start_date"` // "2025-07-01"
	EndDate        string           `json:"end_date"`   // "2025-07-08"
	Price          *decimal.Decimal `json:"price"`
	MaxCapacity    *int             `json:"max_capacity"`
	AvailableSlots *int             `json:"available_slots,omitempty"`
	Facilities     []string         `json:"facilities"`
	Status         string           `json:"status"`
}

// ListPackagesRequest фильтры списка тур-пакетов
type ListPackagesRequest struct {
	Status        *string
	OnlyAvailable bool // только активные пакеты со свободными местами
	Limit         uint64
}

// Response модели

// PackageResponse ответ с данными тур-пакета
type PackageResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Destinations   []string  `json:"destinations"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Price          string    `json:"price"`
	MaxCapacity    int       `json:"max_capacity"`
	AvailableSlots int       `json:"available_slots"`
	BookedSlots    int       `json:"booked_slots"`
	Facilities     []string  `json:"facilities"`
	Status         string    `json:"status"`
	BookingsCount  *int      `json:"bookings_count,omitempty"` // заполняется только в списке
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PackageListResponse ответ со списком тур-пакетов
type PackageListResponse struct {
	Packages []PackageResponse `json:"packages"`
}

// Методы конвертации

// FromDomainPackage конвертирует domain модель в DTO
func FromDomainPackage(p *domain.TourPackage) *PackageResponse {
	if p == nil {
		return nil
	}

	return &PackageResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Destinations:   nonNil(p.Destinations),
		StartDate:      p.StartDate.Format(domain.DateFormat),
		EndDate:        p.EndDate.Format(domain.DateFormat),
		Price:          p.Price.StringFixed(domain.MoneyPrecision),
		MaxCapacity:    p.MaxCapacity,
		AvailableSlots: p.AvailableSlots,
		BookedSlots:    p.BookedSlots(),
		Facilities:     nonNil(p.Facilities),
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// FromDomainPackageList конвертирует список с количеством бронирований по каждому пакету
func FromDomainPackageList(packages []*domain.TourPackage) *PackageListResponse {
	resp := &PackageListResponse{
		Packages: make([]PackageResponse, 0, len(packages)),
	}

	for _, p := range packages {
		item := FromDomainPackage(p)
		if item == nil {
			continue
		}
		count := p.BookingsCount
		item.BookingsCount = &count
		resp.Packages = append(resp.Packages, *item)
	}

	return resp
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
