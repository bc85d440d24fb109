package api

import (
	"net/http"

	"github.com/gorilla/mux"

	createBookingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/create_booking"
	createPackageHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/create_package"
	deleteBookingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/delete_booking"
	deletePackageHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/delete_package"
	getBookingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/get_dashboard"
	getPackageHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/get_package"
	getReportHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/get_report"
	healthCheckHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/health_check"
	listBookingsHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/list_bookings"
	listPackagesHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/list_packages"
	updateBookingHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/update_booking"
	updatePackageHandler "github.com/m04kA/SMC-TourBookingService/internal/api/handlers/update_package"
	"github.com/m04kA/SMC-TourBookingService/internal/api/middleware"
)

// Logger общий интерфейс логгера для обработчиков и middleware
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dependencies сервисы и use case, из которых собирается API
type Dependencies struct {
	Users    middleware.UserProvider
	Metrics  middleware.HTTPMetrics // nil - без HTTP метрик
	Bookings interface {
		getBookingHandler.BookingService
		listBookingsHandler.BookingService
	}
	Packages interface {
		createPackageHandler.PackageService
		updatePackageHandler.PackageService
		deletePackageHandler.PackageService
		getPackageHandler.PackageService
		listPackagesHandler.PackageService
	}
	Reports interface {
		getReportHandler.ReportService
		getDashboardHandler.DashboardService
	}
	CreateBooking createBookingHandler.CreateBookingUseCase
	UpdateBooking updateBookingHandler.UpdateBookingUseCase
	DeleteBooking deleteBookingHandler.DeleteBookingUseCase
	Logger        Logger
}

// NewRouter регистрирует маршруты API
// /health-check публичный, все /api/v1 маршруты требуют X-User-ID
func NewRouter(deps Dependencies) *mux.Router {
	log := deps.Logger

	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	r.HandleFunc("/health-check", healthCheckHandler.NewHandler().Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(deps.Users, log))

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookingsHandler.NewHandler(deps.Bookings, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBookingHandler.NewHandler(deps.CreateBooking, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBookingHandler.NewHandler(deps.Bookings, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBookingHandler.NewHandler(deps.UpdateBooking, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}", deleteBookingHandler.NewHandler(deps.DeleteBooking, log).Handle).Methods(http.MethodDelete)

	// --- Тур-пакеты (изменение только для администратора) ---
	api.HandleFunc("/tour-packages", listPackagesHandler.NewHandler(deps.Packages, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/tour-packages", createPackageHandler.NewHandler(deps.Packages, log).Handle).Methods(http.MethodPost)
	api.HandleFunc("/tour-packages/{packageId}", getPackageHandler.NewHandler(deps.Packages, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/tour-packages/{packageId}", updatePackageHandler.NewHandler(deps.Packages, log).Handle).Methods(http.MethodPut)
	api.HandleFunc("/tour-packages/{packageId}", deletePackageHandler.NewHandler(deps.Packages, log).Handle).Methods(http.MethodDelete)

	// --- Отчеты ---
	api.HandleFunc("/reports", getReportHandler.NewHandler(deps.Reports, log).Handle).Methods(http.MethodGet)
	api.HandleFunc("/dashboard", getDashboardHandler.NewHandler(deps.Reports, log).Handle).Methods(http.MethodGet)

	return r
}
