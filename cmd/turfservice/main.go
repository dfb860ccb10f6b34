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

	copyDayPlanHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/copy_day_plan"
	createPricingHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/create_pricing"
	createSportHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/create_sport"
	createTurfHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/create_turf"
	getDaySlotsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_day_slots"
	getOwnerTurfsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_owner_turfs"
	getPlanTemplateHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_plan_template"
	getSlotPriceHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_slot_price"
	getTurfSportsHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/get_turf_sports"
	previewSlotPlanHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/preview_slot_plan"
	saveSlotPlanHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/save_slot_plan"
	toggleSlotStatusHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/toggle_slot_status"
	updateSlotPriceHandler "github.com/m04kA/SMC-TurfService/internal/api/handlers/update_slot_price"
	"github.com/m04kA/SMC-TurfService/internal/api/middleware"
	"github.com/m04kA/SMC-TurfService/internal/config"
	slotsCache "github.com/m04kA/SMC-TurfService/internal/infra/cache/slots"
	slotRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/slot"
	sportRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/sport"
	turfRepo "github.com/m04kA/SMC-TurfService/internal/infra/storage/turf"
	"github.com/m04kA/SMC-TurfService/internal/integrations/sportshouse"
	catalogService "github.com/m04kA/SMC-TurfService/internal/service/catalog"
	"github.com/m04kA/SMC-TurfService/internal/service/planner"
	slotsService "github.com/m04kA/SMC-TurfService/internal/service/slots"
	copyDayPlanUC "github.com/m04kA/SMC-TurfService/internal/usecase/copy_day_plan"
	previewSlotPlanUC "github.com/m04kA/SMC-TurfService/internal/usecase/preview_slot_plan"
	saveSlotPlanUC "github.com/m04kA/SMC-TurfService/internal/usecase/save_slot_plan"
	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurfService/pkg/logger"
	"github.com/m04kA/SMC-TurfService/pkg/metrics"
	"github.com/m04kA/SMC-TurfService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
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

	log.Info("Starting SMC-TurfService...")
	log.Info("Configuration loaded from %s", configPath)

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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обертка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	turfRepository := turfRepo.NewRepository(wrappedDB)
	sportRepository := sportRepo.NewRepository(wrappedDB)
	slotRepository := slotRepo.NewRepository(wrappedDB)

	// Опциональные зависимости передаются как nil-интерфейсы, если выключены
	var (
		listCache slotsService.SlotsCache
		planCache saveSlotPlanUC.SlotsCache
		mirror    saveSlotPlanUC.LegacyMirror
		recorder  saveSlotPlanUC.MetricsRecorder
	)

	if cfg.Cache.Enabled {
		cache := slotsCache.New(slotsCache.Config{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
			TTL:      time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		}, log)
		defer cache.Close()

		listCache = cache
		planCache = cache
	}

	if cfg.LegacyBackend.Enabled {
		mirror = sportshouse.NewClient(
			cfg.LegacyBackend.URL,
			time.Duration(cfg.LegacyBackend.Timeout)*time.Second,
			log,
		)
		log.Info("Legacy backend mirroring enabled (url=%s, timeout=%ds)",
			cfg.LegacyBackend.URL, cfg.LegacyBackend.Timeout)
	}

	if metricsCollector != nil {
		recorder = metricsCollector
	}

	// Сервисы
	catalogSvc := catalogService.NewService(turfRepository, sportRepository, log)
	slotsSvc := slotsService.NewService(slotRepository, turfRepository, sportRepository, listCache, log)

	// Use cases
	previewUseCase := previewSlotPlanUC.NewUseCase(cfg.Planner.MaxRangesPerDay, log)
	copyDayUseCase := copyDayPlanUC.NewUseCase(cfg.Planner.MaxRangesPerDay, log)
	saveUseCase := saveSlotPlanUC.NewUseCase(
		turfRepository,
		sportRepository,
		slotRepository,
		txMgr,
		planCache,
		mirror,
		recorder,
		cfg.Planner.MaxRangesPerDay,
		log,
	)

	plannerDefaults := planner.Defaults{
		BufferMinutes:       cfg.Planner.DefaultBufferMinutes,
		SlotDurationMinutes: cfg.Planner.DefaultSlotDurationMinutes,
		Price:               cfg.Planner.DefaultPrice,
	}

	// Handlers
	getPlanTemplate := getPlanTemplateHandler.NewHandler(plannerDefaults, log)
	previewSlotPlan := previewSlotPlanHandler.NewHandler(previewUseCase, log)
	copyDayPlan := copyDayPlanHandler.NewHandler(copyDayUseCase, log)
	saveSlotPlan := saveSlotPlanHandler.NewHandler(saveUseCase, log)
	createTurf := createTurfHandler.NewHandler(catalogSvc, log)
	getOwnerTurfs := getOwnerTurfsHandler.NewHandler(catalogSvc, log)
	createSport := createSportHandler.NewHandler(catalogSvc, log)
	getTurfSports := getTurfSportsHandler.NewHandler(catalogSvc, log)
	createPricing := createPricingHandler.NewHandler(catalogSvc, log)
	getDaySlots := getDaySlotsHandler.NewHandler(slotsSvc, log)
	toggleSlotStatus := toggleSlotStatusHandler.NewHandler(slotsSvc, log)
	getSlotPrice := getSlotPriceHandler.NewHandler(slotsSvc, log)
	updateSlotPrice := updateSlotPriceHandler.NewHandler(slotsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, log)
		limiter.StartCleanup(time.Duration(cfg.RateLimit.IdleTimeout)*time.Second, stopMetricsCh)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (%d req/min, burst=%d)", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (живое превью формы, без сохранения)
	// ============================================================

	api.HandleFunc("/slot-plans/template", getPlanTemplate.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slot-plans/preview", previewSlotPlan.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slot-plans/copy-day", copyDayPlan.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Owner-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- План слотов ---
	protected.HandleFunc("/slot-plans", saveSlotPlan.Handle).Methods(http.MethodPost)

	// --- Каталог ---
	protected.HandleFunc("/turfs", createTurf.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/turfs", getOwnerTurfs.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/turfs/{turfId}/sports", createSport.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/turfs/{turfId}/sports", getTurfSports.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/turfs/{turfId}/sports/{sportId}/pricing", createPricing.Handle).Methods(http.MethodPost)

	// --- Слоты ---
	protected.HandleFunc("/turfs/{turfId}/sports/{sportId}/slots", getDaySlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots/{slotId}/status", toggleSlotStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}/price", getSlotPrice.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/slots/{slotId}/price", updateSlotPrice.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
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
