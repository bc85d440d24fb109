package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter фильтры отчета по комиссиям
type ReportFilter struct {
	Status   *BookingStatus
	FromDate *time.Time
	ToDate   *time.Time
}

// AgentReport сводка продаж и комиссий агента
type AgentReport struct {
	Agent             User
	TotalBookings     int
	CompletedBookings int
	TotalSales        decimal.Decimal
	TotalCommission   decimal.Decimal // только completed
	PendingCommission decimal.Decimal // pending + confirmed
	RecentBookings    []*Booking
}

// NewAgentReport агрегирует бронирования агента
// bookings ожидаются отсортированными от новых к старым
func NewAgentReport(agent User, bookings []*Booking) AgentReport {
	report := AgentReport{
		Agent:             agent,
		TotalSales:        decimal.Zero,
		TotalCommission:   decimal.Zero,
		PendingCommission: decimal.Zero,
		RecentBookings:    make([]*Booking, 0, ReportRecentBookings),
	}

	for _, b := range bookings {
		report.TotalBookings++
		report.TotalSales = report.TotalSales.Add(b.TotalAmount)

		switch {
		case b.IsCompleted():
			report.CompletedBookings++
			report.TotalCommission = report.TotalCommission.Add(b.AgentCommission)
		case b.HasPendingCommission():
			report.PendingCommission = report.PendingCommission.Add(b.AgentCommission)
		}

		if len(report.RecentBookings) < ReportRecentBookings {
			report.RecentBookings = append(report.RecentBookings, b)
		}
	}

	return report
}

// OverallStats общие показатели по всем пакетам и бронированиям
type OverallStats struct {
	TotalPackages        int
	ActivePackages       int
	TotalBookings        int
	CompletedBookings    int
	TotalRevenue         decimal.Decimal // сумма completed
	TotalCommissionsPaid decimal.Decimal // комиссии completed
}

// BookingStats агрегаты по бронированиям (с учетом фильтра по агенту)
type BookingStats struct {
	TotalBookings       int
	PendingBookings     int
	CompletedBookings   int
	CompletedRevenue    decimal.Decimal
	CompletedCommission decimal.Decimal
}

// PackageStats агрегаты по тур-пакетам
type PackageStats struct {
	TotalPackages  int
	ActivePackages int
}
