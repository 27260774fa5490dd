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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/MRK-ReservationService/internal/api/handlers"
	cancelReservationHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/cancel_reservation"
	cancelSessionHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/cancel_session"
	getCatalogHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/get_catalog"
	getConfirmationHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/get_confirmation"
	getReceiptHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/get_receipt"
	getSessionHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/get_session"
	navigateStepHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/navigate_step"
	resolveAvailabilityHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/resolve_availability"
	retryPaymentHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/retry_payment"
	selectSlotHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/select_slot"
	startSessionHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/start_session"
	submitBookingHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/submit_booking"
	updateDraftHandler "github.com/m04kA/MRK-ReservationService/internal/api/handlers/update_draft"
	"github.com/m04kA/MRK-ReservationService/internal/api/middleware"
	"github.com/m04kA/MRK-ReservationService/internal/config"
	"github.com/m04kA/MRK-ReservationService/internal/domain"
	"github.com/m04kA/MRK-ReservationService/internal/identity"
	"github.com/m04kA/MRK-ReservationService/internal/infra/cache"
	"github.com/m04kA/MRK-ReservationService/internal/infra/receipt"
	confirmationRepo "github.com/m04kA/MRK-ReservationService/internal/infra/storage/confirmation"
	sessionStore "github.com/m04kA/MRK-ReservationService/internal/infra/storage/session"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/catalogservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/customerservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/notificationservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/paymentservice"
	"github.com/m04kA/MRK-ReservationService/internal/integrations/reservationservice"
	catalogService "github.com/m04kA/MRK-ReservationService/internal/service/catalog"
	confirmationsService "github.com/m04kA/MRK-ReservationService/internal/service/confirmations"
	draftsService "github.com/m04kA/MRK-ReservationService/internal/service/drafts"
	"github.com/m04kA/MRK-ReservationService/internal/service/pricing"
	cancelReservationUC "github.com/m04kA/MRK-ReservationService/internal/usecase/cancel_reservation"
	resolveAvailabilityUC "github.com/m04kA/MRK-ReservationService/internal/usecase/resolve_availability"
	retryPaymentUC "github.com/m04kA/MRK-ReservationService/internal/usecase/retry_payment"
	submitBookingUC "github.com/m04kA/MRK-ReservationService/internal/usecase/submit_booking"
	"github.com/m04kA/MRK-ReservationService/pkg/logger"
	"github.com/m04kA/MRK-ReservationService/pkg/metrics"
)

type confirmationStore interface {
	Save(ctx context.Context, c *domain.Confirmation) error
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Confirmation, error)
	UpdateStatus(ctx context.Context, reservationID int64, status domain.ReservationStatus) error
}

type notifier interface {
	NotifyConfirmed(ctx context.Context, n *notificationservice.ReservationNotification) error
	NotifyCancelled(ctx context.Context, n *notificationservice.ReservationNotification) error
}

type observer interface {
	ObserveStage(stage, outcome string)
	ObserveAvailability(variant, source string)
	ObserveIntegration(service, operation string, started time.Time, err error)
}

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

	log.Info("Starting MRK-ReservationService...")

	// Метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		obs              observer = metrics.Noop{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		obs = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сессии и кеш справочников: Redis или память процесса
	var (
		sessions     draftsService.SessionStore
		catalogCache catalogService.Cache
		redisClient  *redis.Client
	)
	catalogTTL := time.Duration(cfg.CatalogService.CacheTTLSeconds) * time.Second
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Redis.Addr, err)
		}
		defer redisClient.Close()

		sessions = sessionStore.NewRedisStore(redisClient, cfg.SessionTTL())
		catalogCache = cache.NewRedisCache(redisClient, "catalog:", catalogTTL)
		log.Info("Redis session store and catalog cache enabled (addr=%s)", cfg.Redis.Addr)
	} else {
		sessions = sessionStore.NewMemoryStore(cfg.SessionTTL())
		catalogCache = cache.NewMemoryCache(catalogTTL)
		log.Warn("Redis disabled: booking sessions are kept in process memory")
	}

	// Подтверждения: postgres или память процесса
	var confirmations confirmationStore
	if cfg.Database.Enabled {
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
		confirmations = confirmationRepo.NewRepository(db)
	} else {
		confirmations = confirmationRepo.NewMemoryRepository()
		log.Warn("Database disabled: confirmations are kept in process memory")
	}

	// Интеграционные клиенты
	reservationClient := reservationservice.NewClient(
		cfg.ReservationService.URL,
		time.Duration(cfg.ReservationService.Timeout)*time.Second,
		obs,
		log,
	)
	catalogClient := catalogservice.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		obs,
		log,
	)
	paymentClient := paymentservice.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		obs,
		log,
	)
	customerClient := customerservice.NewClient(
		cfg.CustomerService.URL,
		time.Duration(cfg.CustomerService.Timeout)*time.Second,
		obs,
		log,
	)

	var notifications notifier
	switch cfg.NotificationSvc.Transport {
	case config.NotificationTransportAMQP:
		conn, ch, err := notificationservice.Dial(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		defer conn.Close()
		defer ch.Close()
		notifications = notificationservice.NewPublisher(
			ch,
			cfg.RabbitMQ.Exchange,
			time.Duration(cfg.NotificationSvc.Timeout)*time.Second,
			log,
		)
		log.Info("Notifications published to RabbitMQ exchange %s", cfg.RabbitMQ.Exchange)
	default:
		notifications = notificationservice.NewClient(
			cfg.NotificationSvc.URL,
			time.Duration(cfg.NotificationSvc.Timeout)*time.Second,
			obs,
			log,
		)
		log.Info("Notifications sent to %s", cfg.NotificationSvc.URL)
	}

	tokenizer := paymentservice.NewTokenizer()
	identities := identity.ContextProvider{}
	validator := identity.NewValidator(cfg.Security.JWTSecret, cfg.Security.JWTIssuer)

	// Сервисы
	catalogSvc := catalogService.NewService(catalogClient, catalogCache, domain.DefaultEventCatalog(), log)
	draftSvc := draftsService.NewService(
		sessions,
		catalogSvc,
		customerClient,
		identities,
		pricing.NewCalculator(cfg.PricingSettings()),
		cfg.DraftSettings(),
		log,
	)
	confirmationSvc := confirmationsService.NewService(
		confirmations,
		receipt.NewRenderer(cfg.Receipt.RestaurantName),
		identities,
		log,
	)

	// Use cases
	resolveAvailabilityUseCase := resolveAvailabilityUC.NewUseCase(
		reservationClient,
		draftSvc,
		catalogSvc,
		obs,
		cfg.AvailabilitySettings(),
		log,
	)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		sessions,
		draftSvc,
		reservationClient,
		paymentClient,
		tokenizer,
		notifications,
		confirmations,
		obs,
		submitBookingUC.Config{ProcessingTTL: cfg.ProcessingTTL()},
		log,
	)
	retryPaymentUseCase := retryPaymentUC.NewUseCase(
		confirmations,
		sessions,
		reservationClient,
		paymentClient,
		tokenizer,
		notifications,
		identities,
		obs,
		retryPaymentUC.Config{ProcessingTTL: cfg.ProcessingTTL()},
		log,
	)
	cancelReservationUseCase := cancelReservationUC.NewUseCase(
		reservationClient,
		notifications,
		confirmations,
		identities,
		log,
	)

	// Handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	startSession := startSessionHandler.NewHandler(draftSvc, log)
	getSession := getSessionHandler.NewHandler(draftSvc, log)
	cancelSession := cancelSessionHandler.NewHandler(draftSvc, log)
	updateDraft := updateDraftHandler.NewHandler(draftSvc, log)
	navigateStep := navigateStepHandler.NewHandler(draftSvc, log)
	resolveAvailability := resolveAvailabilityHandler.NewHandler(resolveAvailabilityUseCase, log)
	selectSlot := selectSlotHandler.NewHandler(draftSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getConfirmation := getConfirmationHandler.NewHandler(confirmationSvc, log)
	getReceipt := getReceiptHandler.NewHandler(confirmationSvc, log)
	retryPayment := retryPaymentHandler.NewHandler(retryPaymentUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelReservationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(middleware.HTTPMetrics{
			Requests: metricsCollector.HTTPRequestsTotal,
			Duration: metricsCollector.HTTPRequestDuration,
		}))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// GUEST ROUTES (токен необязателен, с токеном черновик привязывается к клиенту)
	// ============================================================

	guest := api.PathPrefix("").Subrouter()
	guest.Use(middleware.OptionalAuth(validator, log))

	guest.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// --- Сессии бронирования ---
	guest.HandleFunc("/booking-sessions", startSession.Handle).Methods(http.MethodPost)
	guest.HandleFunc("/booking-sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	guest.HandleFunc("/booking-sessions/{sessionId}", cancelSession.Handle).Methods(http.MethodDelete)
	guest.HandleFunc("/booking-sessions/{sessionId}/draft", updateDraft.Handle).Methods(http.MethodPatch)
	guest.HandleFunc("/booking-sessions/{sessionId}/steps", navigateStep.Handle).Methods(http.MethodPost)
	guest.HandleFunc("/booking-sessions/{sessionId}/availability", resolveAvailability.Handle).Methods(http.MethodGet)
	guest.HandleFunc("/booking-sessions/{sessionId}/slot", selectSlot.Handle).Methods(http.MethodPost)
	guest.HandleFunc("/booking-sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Подтверждения ---
	guest.HandleFunc("/confirmations/{reservationId}", getConfirmation.Handle).Methods(http.MethodGet)
	guest.HandleFunc("/confirmations/{reservationId}/receipt", getReceipt.Handle).Methods(http.MethodGet)
	guest.HandleFunc("/confirmations/{reservationId}/payment-retry", retryPayment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireAuth(validator, log))

	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
