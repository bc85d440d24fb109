package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-TourBookingService/internal/api"
	"github.com/m04kA/SMC-TourBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/booking"
	packageRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/tourpackage"
	userRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-TourBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-TourBookingService/internal/service/commission"
	inventoryService "github.com/m04kA/SMC-TourBookingService/internal/service/inventory"
	packagesService "github.com/m04kA/SMC-TourBookingService/internal/service/packages"
	reportsService "github.com/m04kA/SMC-TourBookingService/internal/service/reports"
	createBookingUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/create_booking"
	deleteBookingUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/delete_booking"
	updateBookingUC "github.com/m04kA/SMC-TourBookingService/internal/usecase/update_booking"
	"github.com/m04kA/SMC-TourBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBookingService/pkg/logger"
	"github.com/m04kA/SMC-TourBookingService/pkg/metrics"
	"github.com/m04kA/SMC-TourBookingService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TourBookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики: при выключенных методы nil-коллектора ничего не делают
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, txmanager.WithMaxRetries(cfg.Booking.MaxConflictRetries))

	// Репозитории
	packageRepository := packageRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)

	// Сервисы
	inventory := inventoryService.NewService(packageRepository, log)
	calculator := commission.NewCalculator()
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	packageSvc := packagesService.NewService(packageRepository, txMgr, log)
	reportSvc := reportsService.NewService(userRepository, bookingRepository, packageRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, inventory, calculator, txMgr, metricsCollector, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookingRepository, inventory, calculator, txMgr, metricsCollector, log)
	deleteBookingUseCase := deleteBookingUC.NewUseCase(bookingRepository, inventory, txMgr, metricsCollector, log)

	deps := api.Dependencies{
		Users:         userRepository,
		Bookings:      bookingSvc,
		Packages:      packageSvc,
		Reports:       reportSvc,
		CreateBooking: createBookingUseCase,
		UpdateBooking: updateBookingUseCase,
		DeleteBooking: deleteBookingUseCase,
		Logger:        log,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = metricsCollector
	}

	r := api.NewRouter(deps)

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
