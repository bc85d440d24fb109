package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackageStatus статус тур-пакета
type PackageStatus string

const (
	PackageStatusActive    PackageStatus = "active"
	PackageStatusInactive  PackageStatus = "inactive"
	PackageStatusCompleted PackageStatus = "completed"
)

// IsValid проверяет, что статус входит в допустимый набор
func (s PackageStatus) IsValid() bool {
	switch s {
	case PackageStatusActive, PackageStatusInactive, PackageStatusCompleted:
		return true
	}
	return false
}

// TourPackage тур-пакет с пулом мест
// Инвариант: 0 <= AvailableSlots <= MaxCapacity
type TourPackage struct {
	ID             int64
	Name           string
	Description    string
	Destinations   []string
	StartDate      time.Time
	EndDate        time.Time
	Price          decimal.Decimal
	MaxCapacity    int
	AvailableSlots int
	Facilities     []string
	Status         PackageStatus

	// Заполняется только при выборке списков
	BookingsCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reserve занимает count мест
func (p *TourPackage) Reserve(count int) error {
	if count < 1 {
		return ErrInvalidSlotCount
	}
	if p.AvailableSlots < count {
		return ErrInsufficientSlots
	}
	p.AvailableSlots -= count
	return nil
}

// Release возвращает count мест в пул, не поднимая счетчик выше MaxCapacity
func (p *TourPackage) Release(count int) error {
	if count < 1 {
		return ErrInvalidSlotCount
	}
	p.AvailableSlots += count
	if p.AvailableSlots > p.MaxCapacity {
		p.AvailableSlots = p.MaxCapacity
	}
	return nil
}

// Adjust применяет разницу мест: delta > 0 освобождает, delta < 0 занимает
func (p *TourPackage) Adjust(delta int) error {
	switch {
	case delta < 0:
		return p.Reserve(-delta)
	case delta > 0:
		return p.Release(delta)
	default:
		return nil
	}
}

// BookedSlots количество занятых мест
func (p *TourPackage) BookedSlots() int {
	return p.MaxCapacity - p.AvailableSlots
}

// HasAvailableSlots returns true if at least one slot is free
func (p *TourPackage) HasAvailableSlots() bool {
	return p.AvailableSlots > 0
}

// IsActive returns true if the package is open for sale
func (p *TourPackage) IsActive() bool {
	return p.Status == PackageStatusActive
}

// TourPackagesFilter фильтр списка тур-пакетов
type TourPackagesFilter struct {
	Status        *PackageStatus // Фильтр по статусу (опционально)
	OnlyAvailable bool           // Только активные пакеты со свободными местами
	Limit         uint64         // 0 - без ограничения
}
