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

	activeClaimantsHandler "github.com/m04kA/Mira-CourtBooking/internal/api/handlers/active_claimants"
	bookSlotHandler "github.com/m04kA/Mira-CourtBooking/internal/api/handlers/book_slot"
	cancelReservationHandler "github.com/m04kA/Mira-CourtBooking/internal/api/handlers/cancel_reservation"
	getAvailabilityHandler "github.com/m04kA/Mira-CourtBooking/internal/api/handlers/get_availability"
	getFreeHoursHandler "github.com/m04kA/Mira-CourtBooking/internal/api/handlers/get_free_hours"
	myReservationsHandler "github.com/m04kA/Mira-CourtBooking/internal/api/handlers/my_reservations"
	recentActivityHandler "github.com/m04kA/Mira-CourtBooking/internal/api/handlers/recent_activity"
	reclaimExpiredHandler "github.com/m04kA/Mira-CourtBooking/internal/api/handlers/reclaim_expired"
	usageReportHandler "github.com/m04kA/Mira-CourtBooking/internal/api/handlers/usage_report"
	"github.com/m04kA/Mira-CourtBooking/internal/api/middleware"
	"github.com/m04kA/Mira-CourtBooking/internal/clock"
	"github.com/m04kA/Mira-CourtBooking/internal/config"
	"github.com/m04kA/Mira-CourtBooking/internal/domain"
	"github.com/m04kA/Mira-CourtBooking/internal/events"
	activityRepo "github.com/m04kA/Mira-CourtBooking/internal/infra/storage/activitylog"
	reservationRepo "github.com/m04kA/Mira-CourtBooking/internal/infra/storage/reservation"
	reportsService "github.com/m04kA/Mira-CourtBooking/internal/service/reports"
	reservationsService "github.com/m04kA/Mira-CourtBooking/internal/service/reservations"
	bookSlotUC "github.com/m04kA/Mira-CourtBooking/internal/usecase/book_slot"
	getAvailabilityUC "github.com/m04kA/Mira-CourtBooking/internal/usecase/get_availability"
	getFreeHoursUC "github.com/m04kA/Mira-CourtBooking/internal/usecase/get_free_hours"
	reclaimExpiredUC "github.com/m04kA/Mira-CourtBooking/internal/usecase/reclaim_expired"
	"github.com/m04kA/Mira-CourtBooking/pkg/dbmetrics"
	"github.com/m04kA/Mira-CourtBooking/pkg/logger"
	"github.com/m04kA/Mira-CourtBooking/pkg/metrics"
	"github.com/m04kA/Mira-CourtBooking/pkg/simpletxmanager"
	"github.com/m04kA/Mira-CourtBooking/pkg/txmanager"
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

	log.Info("Starting Mira-CourtBooking...")
	log.Info("Configuration loaded from config.toml")

	// Правила бронирования сообщества
	rules := cfg.Booking.Rules()
	log.Info("Booking rules loaded (courts=%d, hours=%02d:00-%02d:00, window=%d days)",
		len(rules.Courts), rules.FirstHour, rules.LastHour, rules.WindowDays)

	// Часы сообщества (GST, UTC+4)
	communityClock := clock.New()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		activityRepository    *activityRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		activityRepository = activityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		reservationRepository = reservationRepo.NewRepository(db)
		activityRepository = activityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем публикацию событий (если включена)
	type EventPublisher interface {
		ReservationCreated(ctx context.Context, res *domain.Reservation) error
		ReservationDeleted(ctx context.Context, res *domain.Reservation) error
		Close() error
	}
	var publisher EventPublisher

	if cfg.Events.Enabled {
		publisher = events.NewPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		log.Info("Event publisher initialized (brokers=%v, topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)
	} else {
		publisher = events.NopPublisher{}
		log.Info("Event publishing disabled")
	}
	defer publisher.Close()

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		activityRepository,
		txMgr,
		communityClock,
		publisher,
		log,
	)

	reportSvc := reportsService.NewService(
		reservationRepository,
		activityRepository,
		communityClock,
		log,
		rules,
	)

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(
		reservationRepository,
		activityRepository,
		txMgr,
		communityClock,
		publisher,
		log,
		rules,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		reservationRepository,
		communityClock,
		log,
		rules,
	)

	getFreeHoursUseCase := getFreeHoursUC.NewUseCase(
		reservationRepository,
		communityClock,
		log,
		rules,
	)

	reclaimExpiredUseCase := reclaimExpiredUC.NewUseCase(
		reservationRepository,
		communityClock,
		log,
	)

	// Убираем истекшие бронирования, накопившиеся за время простоя
	if result, err := reclaimExpiredUseCase.Execute(context.Background()); err != nil {
		log.Error("Startup reclaim failed: %v", err)
	} else {
		log.Info("Startup reclaim finished: deleted=%d", result.Deleted)
	}

	// Инициализируем handlers
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getFreeHours := getFreeHoursHandler.NewHandler(getFreeHoursUseCase, log)
	myReservations := myReservationsHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	activeClaimants := activeClaimantsHandler.NewHandler(reportSvc, log)
	usageReport := usageReportHandler.NewHandler(reportSvc, log)
	recentActivity := recentActivityHandler.NewHandler(reportSvc, log)
	reclaimExpired := reclaimExpiredHandler.NewHandler(reclaimExpiredUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без идентификации виллы)
	// ============================================================

	// Сетка занятости всех кортов на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Свободные часы одного корта на дату
	api.HandleFunc("/courts/{court}/free-hours", getFreeHours.Handle).Methods(http.MethodGet)

	// Виллы с активными бронированиями
	api.HandleFunc("/reports/active-claimants", activeClaimants.Handle).Methods(http.MethodGet)

	// Распределение бронирований по часам и дням недели
	api.HandleFunc("/reports/usage", usageReport.Handle).Methods(http.MethodGet)

	// Журнал активности
	api.HandleFunc("/activity", recentActivity.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Community и X-Villa headers)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Identity(log))

	// --- Бронирования ---
	// Бронирование слота
	protected.HandleFunc("/reservations", bookSlot.Handle).Methods(http.MethodPost)

	// Бронирования заявителя
	protected.HandleFunc("/reservations", myReservations.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// --- Обслуживание ---
	// Уборка истекших бронирований
	protected.HandleFunc("/maintenance/reclaim-expired", reclaimExpired.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
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
