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

	checkBookingHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/check_booking"
	createQuoteHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/create_quote"
	createResourceHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/create_resource"
	deleteResourceHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/delete_resource"
	getQuoteHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/get_quote"
	getResourceHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/get_resource"
	getResourceScheduleHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/get_resource_schedule"
	getUserQuotesHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/get_user_quotes"
	listResourcesHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/list_resources"
	priceRentalHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/price_rental"
	updateResourceRulesHandler "github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers/update_resource_rules"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/config"
	quoteRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/quote"
	resourceRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
	catalogServiceClient "github.com/m04kA/StudioHub-AvailabilityService/internal/integrations/catalogservice"
	quotesService "github.com/m04kA/StudioHub-AvailabilityService/internal/service/quotes"
	resourcesService "github.com/m04kA/StudioHub-AvailabilityService/internal/service/resources"
	checkBookingUC "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/check_booking"
	createQuoteUC "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/create_quote"
	priceRentalUC "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/price_rental"
	resolveScheduleUC "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/resolve_schedule"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/logger"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/metrics"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting StudioHub-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем интеграционного клиента каталога
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		resourceRepository *resourceRepo.Repository
		quoteRepository    *quoteRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		quoteRepository = quoteRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		resourceRepository = resourceRepo.NewRepository(db)
		quoteRepository = quoteRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	resourceSvc := resourcesService.NewService(resourceRepository, txMgr, log)
	quoteSvc := quotesService.NewService(quoteRepository, log)

	// Инициализируем use cases
	resolveScheduleUseCase := resolveScheduleUC.NewUseCase(resourceRepository, log)
	checkBookingUseCase := checkBookingUC.NewUseCase(resourceRepository, log)
	priceRentalUseCase := priceRentalUC.NewUseCase(resourceRepository, log)
	createQuoteUseCase := createQuoteUC.NewUseCase(
		resourceRepository,
		quoteRepository,
		catalogClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	listResources := listResourcesHandler.NewHandler(resourceSvc, log)
	createResource := createResourceHandler.NewHandler(resourceSvc, log)
	getResource := getResourceHandler.NewHandler(resourceSvc, log)
	updateResourceRules := updateResourceRulesHandler.NewHandler(resourceSvc, log)
	deleteResource := deleteResourceHandler.NewHandler(resourceSvc, log)
	getResourceSchedule := getResourceScheduleHandler.NewHandler(resolveScheduleUseCase, log)
	checkBooking := checkBookingHandler.NewHandler(checkBookingUseCase, log)
	priceRental := priceRentalHandler.NewHandler(priceRentalUseCase, log)
	createQuote := createQuoteHandler.NewHandler(createQuoteUseCase, log)
	getQuote := getQuoteHandler.NewHandler(quoteSvc, log)
	getUserQuotes := getUserQuotesHandler.NewHandler(quoteSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог ресурсов
	api.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}", getResource.Handle).Methods(http.MethodGet)

	// Расписание доступности ресурса
	api.HandleFunc("/resources/{resourceId}/schedule", getResourceSchedule.Handle).Methods(http.MethodGet)

	// Проверка доступности по категориям
	api.HandleFunc("/bookings/check", checkBooking.Handle).Methods(http.MethodPost)

	// Предварительный расчет стоимости аренды
	api.HandleFunc("/rentals/price", priceRental.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление каталогом (для менеджеров) ---
	protected.HandleFunc("/resources", createResource.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/resources/{resourceId}/rules", updateResourceRules.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/resources/{resourceId}", deleteResource.Handle).Methods(http.MethodDelete)

	// --- Расценки ---
	// Создание расценки (проверка доступности + расчет + сохранение)
	protected.HandleFunc("/quotes", createQuote.Handle).Methods(http.MethodPost)

	// Получение расценки по публичному ID
	protected.HandleFunc("/quotes/{quoteId}", getQuote.Handle).Methods(http.MethodGet)

	// История расценок пользователя
	protected.HandleFunc("/users/{userId}/quotes", getUserQuotes.Handle).Methods(http.MethodGet)

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
