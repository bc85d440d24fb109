package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	bookingModels "github.com/m04kA/SMC-TourBookingService/internal/service/bookings/models"
	packageModels "github.com/m04kA/SMC-TourBookingService/internal/service/packages/models"
	"github.com/m04kA/SMC-TourBookingService/internal/service/reports/models"
)

const (
	msgStatusInvalid   = "Invalid booking status."
	msgFromDateInvalid = "From date must be a valid date (YYYY-MM-DD)."
	msgToDateInvalid   = "To date must be a valid date (YYYY-MM-DD)."
)

// Service отчеты по комиссиям агентов и данные дашборда
type Service struct {
	userRepo    UserRepository
	bookingRepo BookingRepository
	packageRepo PackageRepository
	now         func() time.Time
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	userRepo UserRepository,
	bookingRepo BookingRepository,
	packageRepo PackageRepository,
	logger Logger,
) *Service {
	return &Service{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		packageRepo: packageRepo,
		now:         time.Now,
		logger:      logger,
	}
}

// CommissionReport строит отчет по агентам
// Администратор видит всех агентов (включая агентов без бронирований), агент - только себя.
// Фильтры применяются к бронированиям агентов, общие показатели считаются без фильтров
func (s *Service) CommissionReport(ctx context.Context, req *models.ReportRequest) (*models.ReportResponse, error) {
	if req.Actor == nil || (!req.Actor.IsAdmin() && !req.Actor.IsAgent()) {
		return nil, ErrAccessDenied
	}

	filter, err := parseReportFilter(req)
	if err != nil {
		s.logger.Warn("CommissionReport: invalid filters for user=%d: %v", req.Actor.ID, err)
		return nil, err
	}

	s.logger.Info("CommissionReport: user=%d, role=%s, status=%v, from=%v, to=%v",
		req.Actor.ID, req.Actor.Role, req.Status, req.FromDate, req.ToDate)

	agents, err := s.userRepo.ListAgents(ctx, req.Actor.ScopeAgentID())
	if err != nil {
		s.logger.Error("CommissionReport: failed to list agents: %v", err)
		return nil, fmt.Errorf("%w: CommissionReport - list agents: %v", ErrInternal, err)
	}

	reportData := make([]models.AgentReportResponse, 0, len(agents))
	for _, agent := range agents {
		agentID := agent.ID
		bookingsFilter := domain.BookingsFilter{
			AgentID:  &agentID,
			Status:   filter.Status,
			FromDate: filter.FromDate,
			ToDate:   filter.ToDate,
		}

		bookings, err := s.bookingRepo.List(ctx, bookingsFilter)
		if err != nil {
			s.logger.Error("CommissionReport: failed to list bookings of agent=%d: %v", agent.ID, err)
			return nil, fmt.Errorf("%w: CommissionReport - list bookings: %v", ErrInternal, err)
		}

		reportData = append(reportData, models.FromAgentReport(domain.NewAgentReport(*agent, bookings)))
	}

	overall, err := s.overallStats(ctx)
	if err != nil {
		s.logger.Error("CommissionReport: failed to get overall stats: %v", err)
		return nil, fmt.Errorf("%w: CommissionReport - overall stats: %v", ErrInternal, err)
	}

	s.logger.Info("CommissionReport: built report for %d agents", len(reportData))
	return &models.ReportResponse{
		ReportData: reportData,
		TotalStats: models.FromOverallStats(overall),
		Filters: models.FiltersResponse{
			Status:   req.Status,
			FromDate: req.FromDate,
			ToDate:   req.ToDate,
		},
	}, nil
}

// Dashboard собирает витрину пакетов и статистику по роли пользователя
func (s *Service) Dashboard(ctx context.Context, actor *domain.User) (*models.DashboardResponse, error) {
	if actor == nil || (!actor.IsAdmin() && !actor.IsAgent()) {
		return nil, ErrAccessDenied
	}

	s.logger.Info("Dashboard: user=%d, role=%s", actor.ID, actor.Role)

	featured, err := s.packageRepo.List(ctx, domain.TourPackagesFilter{
		OnlyAvailable: true,
		Limit:         domain.FeaturedPackagesLimit,
	})
	if err != nil {
		s.logger.Error("Dashboard: failed to list featured packages: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - featured packages: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		UserRole:         string(actor.Role),
		FeaturedPackages: packageModels.FromDomainPackageList(featured).Packages,
		GeneratedAt:      s.now().UTC(),
	}

	recent, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		AgentID: actor.ScopeAgentID(),
		Limit:   domain.RecentBookingsLimit,
	})
	if err != nil {
		s.logger.Error("Dashboard: failed to list recent bookings: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - recent bookings: %v", ErrInternal, err)
	}
	recentResp := bookingModels.FromDomainBookingList(recent).Bookings

	if actor.IsAdmin() {
		resp.AdminStats, err = s.adminStats(ctx, recentResp)
	} else {
		resp.AgentStats, err = s.agentStats(ctx, actor.ID, recentResp)
	}
	if err != nil {
		s.logger.Error("Dashboard: failed to get stats for user=%d: %v", actor.ID, err)
		return nil, fmt.Errorf("%w: Dashboard - stats: %v", ErrInternal, err)
	}

	return resp, nil
}

func (s *Service) adminStats(ctx context.Context, recent []bookingModels.BookingResponse) (*models.AdminStatsResponse, error) {
	packageStats, err := s.packageRepo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	bookingStats, err := s.bookingRepo.Stats(ctx, domain.BookingsFilter{})
	if err != nil {
		return nil, err
	}

	agents, err := s.userRepo.CountByRole(ctx, domain.RoleAgent)
	if err != nil {
		return nil, err
	}

	return &models.AdminStatsResponse{
		TotalPackages:  packageStats.TotalPackages,
		ActivePackages: packageStats.ActivePackages,
		TotalBookings:  bookingStats.TotalBookings,
		TotalAgents:    agents,
		RecentBookings: recent,
	}, nil
}

func (s *Service) agentStats(ctx context.Context, agentID int64, recent []bookingModels.BookingResponse) (*models.AgentStatsResponse, error) {
	stats, err := s.bookingRepo.Stats(ctx, domain.BookingsFilter{AgentID: &agentID})
	if err != nil {
		return nil, err
	}

	return &models.AgentStatsResponse{
		MyBookings:        stats.TotalBookings,
		CompletedBookings: stats.CompletedBookings,
		PendingBookings:   stats.PendingBookings,
		TotalCommission:   stats.CompletedCommission.StringFixed(domain.MoneyPrecision),
		RecentBookings:    recent,
	}, nil
}

func (s *Service) overallStats(ctx context.Context) (domain.OverallStats, error) {
	packageStats, err := s.packageRepo.Stats(ctx)
	if err != nil {
		return domain.OverallStats{}, err
	}

	bookingStats, err := s.bookingRepo.Stats(ctx, domain.BookingsFilter{})
	if err != nil {
		return domain.OverallStats{}, err
	}

	return domain.OverallStats{
		TotalPackages:        packageStats.TotalPackages,
		ActivePackages:       packageStats.ActivePackages,
		TotalBookings:        bookingStats.TotalBookings,
		CompletedBookings:    bookingStats.CompletedBookings,
		TotalRevenue:         bookingStats.CompletedRevenue,
		TotalCommissionsPaid: bookingStats.CompletedCommission,
	}, nil
}

// parseReportFilter разбирает фильтры отчета, пустые значения игнорируются
func parseReportFilter(req *models.ReportRequest) (domain.ReportFilter, error) {
	var filter domain.ReportFilter
	errs := domain.FieldErrors{}

	if value := trimmed(req.Status); value != "" {
		status := domain.BookingStatus(value)
		if status.IsValid() {
			filter.Status = &status
		} else {
			errs.Add("status", msgStatusInvalid)
		}
	}

	filter.FromDate = parseOptionalDate(trimmed(req.FromDate), "from_date", msgFromDateInvalid, errs)
	filter.ToDate = parseOptionalDate(trimmed(req.ToDate), "to_date", msgToDateInvalid, errs)

	if !errs.Empty() {
		return domain.ReportFilter{}, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	return filter, nil
}

func parseOptionalDate(value, field, msg string, errs domain.FieldErrors) *time.Time {
	if value == "" {
		return nil
	}

	date, err := time.Parse(domain.DateFormat, value)
	if err != nil {
		errs.Add(field, msg)
		return nil
	}
	return &date
}

func trimmed(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
