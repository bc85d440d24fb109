package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	bookingModels "github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	packageModels "github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
)

// Request модели

// ReportRequest фильтры отчета по комиссиям, даты в формате YYYY-MM-DD
type ReportRequest struct {
	Actor    *domain.User
	Status   *string
	FromDate *string
	ToDate   *string
}

// Response модели

// AgentResponse краткие данные агента
type AgentResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AgentReportResponse продажи и комиссии агента
type AgentReportResponse struct {
	Agent             AgentResponse                   `json:"agent"`
	TotalBookings     int                             `json:"total_bookings"`
	CompletedBookings int                             `json:"completed_bookings"`
	TotalSales        string                          `json:"total_sales"`
	TotalCommission   string                          `json:"total_commission"`
	PendingCommission string                          `json:"pending_commission"`
	Bookings          []bookingModels.BookingResponse `json:"bookings"`
}

// TotalStatsResponse общие показатели
type TotalStatsResponse struct {
	TotalPackages        int    `json:"total_packages"`
	ActivePackages       int    `json:"active_packages"`
	TotalBookings        int    `json:"total_bookings"`
	CompletedBookings    int    `json:"completed_bookings"`
	TotalRevenue         string `json:"total_revenue"`
	TotalCommissionsPaid string `json:"total_commissions_paid"`
}

// FiltersResponse примененные фильтры
type FiltersResponse struct {
	Status   *string `json:"status,omitempty"`
	FromDate *string `json:"from_date,omitempty"`
	ToDate   *string `json:"to_date,omitempty"`
}

// ReportResponse отчет по комиссиям
type ReportResponse struct {
	ReportData []AgentReportResponse `json:"report_data"`
	TotalStats TotalStatsResponse    `json:"total_stats"`
	Filters    FiltersResponse       `json:"filters"`
}

// AdminStatsResponse показатели дашборда администратора
type AdminStatsResponse struct {
	TotalPackages  int                             `json:"total_packages"`
	ActivePackages int                             `json:"active_packages"`
	TotalBookings  int                             `json:"total_bookings"`
	TotalAgents    int                             `json:"total_agents"`
	RecentBookings []bookingModels.BookingResponse `json:"recent_bookings"`
}

// AgentStatsResponse показатели дашборда агента
type AgentStatsResponse struct {
	MyBookings        int                             `json:"my_bookings"`
	CompletedBookings int                             `json:"completed_bookings"`
	PendingBookings   int                             `json:"pending_bookings"`
	TotalCommission   string                          `json:"total_commission"`
	RecentBookings    []bookingModels.BookingResponse `json:"recent_bookings"`
}

// DashboardResponse данные дашборда
type DashboardResponse struct {
	UserRole         string                          `json:"user_role"`
	FeaturedPackages []packageModels.PackageResponse `json:"featured_packages"`
	AdminStats       *AdminStatsResponse             `json:"admin_stats,omitempty"`
	AgentStats       *AgentStatsResponse             `json:"agent_stats,omitempty"`
	GeneratedAt      time.Time                       `json:"generated_at"`
}

// Методы конвертации

// FromAgentReport конвертирует агрегаты агента в DTO
func FromAgentReport(r domain.AgentReport) AgentReportResponse {
	return AgentReportResponse{
		Agent: AgentResponse{
			ID:    r.Agent.ID,
			Name:  r.Agent.Name,
			Email: r.Agent.Email,
		},
		TotalBookings:     r.TotalBookings,
		CompletedBookings: r.CompletedBookings,
		TotalSales:        money(r.TotalSales),
		TotalCommission:   money(r.TotalCommission),
		PendingCommission: money(r.PendingCommission),
		Bookings:          bookingModels.FromDomainBookingList(r.RecentBookings).Bookings,
	}
}

// FromOverallStats конвертирует общие показатели в DTO
func FromOverallStats(s domain.OverallStats) TotalStatsResponse {
	return TotalStatsResponse{
		TotalPackages:        s.TotalPackages,
		ActivePackages:       s.ActivePackages,
		TotalBookings:        s.TotalBookings,
		CompletedBookings:    s.CompletedBookings,
		TotalRevenue:         money(s.TotalRevenue),
		TotalCommissionsPaid: money(s.TotalCommissionsPaid),
	}
}

func money(v decimal.Decimal) string {
	return v.StringFixed(domain.MoneyPrecision)
}
