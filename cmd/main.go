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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminBookingsHandler "github.com/lc-autoel/LCA-BookingSite/internal/api/handlers/admin_bookings"
	adminLoginHandler "github.com/lc-autoel/LCA-BookingSite/internal/api/handlers/admin_login"
	adminTwoFactorHandler "github.com/lc-autoel/LCA-BookingSite/internal/api/handlers/admin_twofactor"
	bookingPageHandler "github.com/lc-autoel/LCA-BookingSite/internal/api/handlers/booking_page"
	createBookingHandler "github.com/lc-autoel/LCA-BookingSite/internal/api/handlers/create_booking"
	pagesHandler "github.com/lc-autoel/LCA-BookingSite/internal/api/handlers/pages"
	twoFactorSetupHandler "github.com/lc-autoel/LCA-BookingSite/internal/api/handlers/twofactor_setup"
	"github.com/lc-autoel/LCA-BookingSite/internal/api/handlers"
	"github.com/lc-autoel/LCA-BookingSite/internal/api/middleware"
	"github.com/lc-autoel/LCA-BookingSite/internal/auth"
	"github.com/lc-autoel/LCA-BookingSite/internal/config"
	"github.com/lc-autoel/LCA-BookingSite/internal/infra/migrations"
	reservationRepo "github.com/lc-autoel/LCA-BookingSite/internal/infra/storage/reservation"
	reservationsService "github.com/lc-autoel/LCA-BookingSite/internal/service/reservations"
	createReservationUC "github.com/lc-autoel/LCA-BookingSite/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/lc-autoel/LCA-BookingSite/internal/usecase/get_availability"
	"github.com/lc-autoel/LCA-BookingSite/internal/web"
	"github.com/lc-autoel/LCA-BookingSite/pkg/logger"
	"github.com/lc-autoel/LCA-BookingSite/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting LCA-BookingSite...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if err := migrations.Run(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	if version, err := migrations.Version(context.Background(), db); err == nil {
		log.Info("Database schema at version %d", version)
	}

	// Сбор метрик connection pool
	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем репозиторий (единственный разделяемый ресурс,
	// внедряется явно — без глобального состояния)
	repository := reservationRepo.NewRepository(db)

	// Расписание слотов, общее для публичного и админского потоков
	schedule := cfg.Booking.ToSchedule()
	log.Info("Slot schedule: %s-%s every %d min, %d-day horizon",
		schedule.DayStart, schedule.DayEnd, schedule.IntervalMinutes, schedule.HorizonDays)

	// Инициализируем сервисы и use cases
	reservationsSvc := reservationsService.NewService(repository, log)
	getAvailability := getAvailabilityUC.NewUseCase(repository, schedule, log)
	createReservation := createReservationUC.NewUseCase(repository, log)

	// Аутентификация администратора
	gate := auth.NewGate(cfg.Auth.AdminPassword, cfg.Auth.TOTPSecret)
	sessionManager := auth.NewSessionManager(
		[]byte(cfg.Auth.SessionKey),
		time.Duration(cfg.Auth.IdleTimeoutMinutes)*time.Minute,
	)

	// Шаблоны страниц
	templates, err := web.Templates()
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}
	renderer := handlers.NewRenderer(templates)

	// Инициализируем handlers
	pages := pagesHandler.NewHandler(renderer, log)
	bookingPage := bookingPageHandler.NewHandler(getAvailability, sessionManager, renderer, log)
	createBooking := createBookingHandler.NewHandler(createReservation, sessionManager, log)
	adminLogin := adminLoginHandler.NewHandler(gate, sessionManager, renderer, log)
	adminTwoFactor := adminTwoFactorHandler.NewHandler(gate, sessionManager, renderer, log)
	twoFactorSetup := twoFactorSetupHandler.NewHandler(
		cfg.Auth.Issuer, cfg.Auth.AccountName, gate.TOTPSecret(), renderer, log)
	adminBookings := adminBookingsHandler.NewHandler(reservationsSvc, getAvailability, renderer, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	r.HandleFunc("/", pages.Home).Methods(http.MethodGet)
	r.HandleFunc("/about", pages.About).Methods(http.MethodGet)
	r.HandleFunc("/contact", pages.Contact).Methods(http.MethodGet)
	r.HandleFunc("/services", pages.Services).Methods(http.MethodGet)

	r.HandleFunc("/booking", bookingPage.Handle).Methods(http.MethodGet)
	r.HandleFunc("/booking", createBooking.Handle).Methods(http.MethodPost)

	r.HandleFunc("/admin_login", adminLogin.HandleForm).Methods(http.MethodGet)
	r.HandleFunc("/admin_login", adminLogin.HandleSubmit).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (первый фактор пройден)
	// ============================================================

	firstFactor := r.PathPrefix("").Subrouter()
	firstFactor.Use(middleware.RequireState(sessionManager, auth.StatePasswordVerified, "/admin_login"))

	firstFactor.HandleFunc("/admin_2fa", adminTwoFactor.HandleForm).Methods(http.MethodGet)
	firstFactor.HandleFunc("/admin_2fa", adminTwoFactor.HandleSubmit).Methods(http.MethodPost)

	// Страница enrollment тоже за первым фактором: секрет не отдается анониму
	firstFactor.HandleFunc("/admin_2fa_setup", twoFactorSetup.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (оба фактора пройдены)
	// ============================================================

	authenticated := r.PathPrefix("").Subrouter()
	authenticated.Use(middleware.RequireState(sessionManager, auth.StateAuthenticated, "/admin_login"))

	authenticated.HandleFunc("/booking_admin", adminBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
