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

	advanceStepHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/advance_step"
	cancelDraftHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/cancel_draft"
	cancelReservationHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/cancel_reservation"
	createDraftHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/create_draft"
	getDraftHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/get_draft"
	getListingStatusHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/get_listing_status"
	getProviderStatusHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/get_provider_status"
	getReservationHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/get_reservation"
	getTimeSlotsHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/get_time_slots"
	getUserReservationsHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/get_user_reservations"
	selectDateHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/select_date"
	selectProviderHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/select_provider"
	selectTimeHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/select_time"
	setNoteHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/set_note"
	submitDraftHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/submit_draft"
	toggleServiceHandler "github.com/avdeev-lv/SM-ReservationService/internal/api/handlers/toggle_service"
	"github.com/avdeev-lv/SM-ReservationService/internal/api/middleware"
	"github.com/avdeev-lv/SM-ReservationService/internal/availability"
	"github.com/avdeev-lv/SM-ReservationService/internal/config"
	"github.com/avdeev-lv/SM-ReservationService/internal/infra/draftstore"
	reservationRepo "github.com/avdeev-lv/SM-ReservationService/internal/infra/storage/reservation"
	authServiceClient "github.com/avdeev-lv/SM-ReservationService/internal/integrations/authservice"
	checkoutServiceClient "github.com/avdeev-lv/SM-ReservationService/internal/integrations/checkoutservice"
	listingServiceClient "github.com/avdeev-lv/SM-ReservationService/internal/integrations/listingservice"
	reservationsService "github.com/avdeev-lv/SM-ReservationService/internal/service/reservations"
	statusService "github.com/avdeev-lv/SM-ReservationService/internal/service/status"
	wizardService "github.com/avdeev-lv/SM-ReservationService/internal/service/wizard"
	getTimeSlotsUC "github.com/avdeev-lv/SM-ReservationService/internal/usecase/get_time_slots"
	submitReservationUC "github.com/avdeev-lv/SM-ReservationService/internal/usecase/submit_reservation"
	"github.com/avdeev-lv/SM-ReservationService/pkg/dbmetrics"
	"github.com/avdeev-lv/SM-ReservationService/pkg/logger"
	"github.com/avdeev-lv/SM-ReservationService/pkg/metrics"
	"github.com/avdeev-lv/SM-ReservationService/pkg/simpletxmanager"
	"github.com/avdeev-lv/SM-ReservationService/pkg/txmanager"
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

	log.Info("Starting SM-ReservationService...")
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

	// Инициализируем интеграционных клиентов
	listingClient := listingServiceClient.NewClient(
		cfg.ListingService.URL,
		time.Duration(cfg.ListingService.Timeout)*time.Second,
		log,
	)
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	checkoutClient := checkoutServiceClient.NewClient(
		cfg.CheckoutService.URL,
		time.Duration(cfg.CheckoutService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ListingService=%s, AuthService=%s, CheckoutService=%s)",
		cfg.ListingService.URL, cfg.AuthService.URL, cfg.CheckoutService.URL)

	// Инициализируем репозиторий бронирований (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		txMgr                 submitReservationUC.TransactionManager
		simpleTxMgr           reservationsService.TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		manager := txmanager.NewTransactionManager(wrappedDB)
		txMgr = manager
		simpleTxMgr = manager
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		manager := simpletxmanager.NewTransactionManager(db)
		txMgr = manager
		simpleTxMgr = manager
	}

	// Хранилище черновиков живет в памяти: черновик не переживает рестарт
	drafts := draftstore.NewStore()

	// Общий вычислитель статусов доступности с пересчетом раз в минуту
	poller := availability.NewPoller(availability.DefaultPollInterval, &availability.RealTimeProvider{}, log)
	poller.Start()
	log.Info("Availability poller started (interval=%s)", availability.DefaultPollInterval)

	// Инициализируем сервисы
	wizardSvc := wizardService.NewService(listingClient, drafts, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, simpleTxMgr, log)
	statusSvc := statusService.NewService(listingClient, poller, log)

	// Инициализируем use cases
	submitReservationUseCase := submitReservationUC.NewUseCase(
		drafts,
		reservationRepository,
		authClient,
		checkoutClient,
		txMgr,
		log,
	)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(listingClient, log)

	// Инициализируем handlers
	createDraft := createDraftHandler.NewHandler(wizardSvc, log)
	getDraft := getDraftHandler.NewHandler(wizardSvc, log)
	cancelDraft := cancelDraftHandler.NewHandler(wizardSvc, log)
	toggleService := toggleServiceHandler.NewHandler(wizardSvc, log)
	selectProvider := selectProviderHandler.NewHandler(wizardSvc, log)
	selectDate := selectDateHandler.NewHandler(wizardSvc, log)
	selectTime := selectTimeHandler.NewHandler(wizardSvc, log)
	setNote := setNoteHandler.NewHandler(wizardSvc, log)
	advanceStep := advanceStepHandler.NewHandler(wizardSvc, log)
	submitDraft := submitDraftHandler.NewHandler(submitReservationUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	getListingStatus := getListingStatusHandler.NewHandler(statusSvc, log)
	getProviderStatus := getProviderStatusHandler.NewHandler(statusSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Бейдж доступности для карточки заведения
	api.HandleFunc("/listings/{listingId}/status", getListingStatus.Handle).Methods(http.MethodGet)

	// Бейдж доступности для карточки мастера
	api.HandleFunc("/listings/{listingId}/providers/{providerId}/status",
		getProviderStatus.Handle).Methods(http.MethodGet)

	// Сетка слотов на дату
	api.HandleFunc("/listings/{listingId}/slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Мастер бронирования ---
	protected.HandleFunc("/listings/{listingId}/draft", createDraft.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/drafts/{draftId}", cancelDraft.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/drafts/{draftId}/services/toggle", toggleService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/provider", selectProvider.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/drafts/{draftId}/date", selectDate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/drafts/{draftId}/time", selectTime.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/drafts/{draftId}/note", setNote.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/drafts/{draftId}/step", advanceStep.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/drafts/{draftId}/submit", submitDraft.Handle).Methods(http.MethodPost)

	// --- История бронирований ---
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

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

	// Останавливаем пересчет статусов
	poller.Stop()
	log.Info("Availability poller stopped")

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
