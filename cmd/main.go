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

	createOrderHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/create_order"
	getAvailableDatesHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/get_available_dates"
	getCatalogHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/get_catalog"
	getEstimatedDeliveryHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/get_estimated_delivery"
	getNextAvailableHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/get_next_available"
	getOrderHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/get_order"
	getTodayStatsHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/get_today_stats"
	healthHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/health"
	listOrdersHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/list_orders"
	quotePriceHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/quote_price"
	updateOrderStatusHandler "github.com/sliques/SLQ-OrderService/internal/api/handlers/update_order_status"
	"github.com/sliques/SLQ-OrderService/internal/api/middleware"
	"github.com/sliques/SLQ-OrderService/internal/config"
	availabilityCache "github.com/sliques/SLQ-OrderService/internal/infra/cache/availability"
	countsRepo "github.com/sliques/SLQ-OrderService/internal/infra/storage/counts"
	orderRepo "github.com/sliques/SLQ-OrderService/internal/infra/storage/order"
	"github.com/sliques/SLQ-OrderService/internal/integrations/notifier"
	availabilityService "github.com/sliques/SLQ-OrderService/internal/service/availability"
	ordersService "github.com/sliques/SLQ-OrderService/internal/service/orders"
	createOrderUC "github.com/sliques/SLQ-OrderService/internal/usecase/create_order"
	estimateDeliveryUC "github.com/sliques/SLQ-OrderService/internal/usecase/estimate_delivery"
	getAvailableDatesUC "github.com/sliques/SLQ-OrderService/internal/usecase/get_available_dates"
	getNextAvailableUC "github.com/sliques/SLQ-OrderService/internal/usecase/get_next_available"
	quotePriceUC "github.com/sliques/SLQ-OrderService/internal/usecase/quote_price"
	"github.com/sliques/SLQ-OrderService/pkg/dbmetrics"
	"github.com/sliques/SLQ-OrderService/pkg/logger"
	"github.com/sliques/SLQ-OrderService/pkg/metrics"
	"github.com/sliques/SLQ-OrderService/pkg/txmanager"
)

const redisPingTimeout = 2 * time.Second

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SLQ-OrderService...")

	rules := cfg.Booking.Rules()
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load business timezone %s: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Booking rules: max_normal_per_day=%d, urgent_min_hours=%d, normal_min_days=%d, timezone=%s",
		rules.MaxNormalPerDay, rules.UrgentMinHours, rules.NormalMinDays, location)

	// nil collector disables recording everywhere
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	orderRepository := orderRepo.NewRepository(wrappedDB)
	countsRepository := countsRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	healthChecks := map[string]healthHandler.Checker{
		"postgres": db.PingContext,
	}

	// Availability cache, the service keeps working on Postgres alone when Redis is absent
	var cache availabilityCache.Cache = availabilityCache.Noop{}
	if cfg.Redis.Enabled() {
		redisCache := availabilityCache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL())
		pingCtx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		err := redisCache.Ping(pingCtx)
		cancel()
		if err != nil {
			log.Warn("Redis unavailable, availability cache disabled: addr=%s, error=%v", cfg.Redis.Addr, err)
			_ = redisCache.Close()
		} else {
			cache = redisCache
			healthChecks["redis"] = redisCache.Ping
			defer redisCache.Close()
			log.Info("Availability cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.TTL())
		}
	}

	hub := notifier.NewHub(
		cfg.Server.AllowedOrigin,
		time.Duration(cfg.Notifier.WriteTimeout)*time.Second,
		cfg.Notifier.BufferSize,
		log,
		metricsCollector,
	)

	timeProvider := &createOrderUC.RealTimeProvider{Location: location}

	// Services
	availabilitySvc := availabilityService.NewService(countsRepository, cache, log)
	ordersSvc := ordersService.NewService(
		orderRepository,
		countsRepository,
		cache,
		hub,
		txMgr,
		timeProvider,
		log,
	)

	// Use cases
	createOrderUseCase := createOrderUC.NewUseCase(
		orderRepository,
		countsRepository,
		cache,
		hub,
		metricsCollector,
		txMgr,
		rules,
		timeProvider,
		log,
	)
	quotePriceUseCase := quotePriceUC.NewUseCase(availabilitySvc, rules, timeProvider, log)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(availabilitySvc, rules, timeProvider, log)
	getNextAvailableUseCase := getNextAvailableUC.NewUseCase(availabilitySvc, rules, timeProvider, log)
	estimateDeliveryUseCase := estimateDeliveryUC.NewUseCase(availabilitySvc, rules, timeProvider, log)

	// Handlers
	health := healthHandler.NewHandler(healthChecks, log)
	getCatalog := getCatalogHandler.NewHandler()
	quotePrice := quotePriceHandler.NewHandler(quotePriceUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getNextAvailable := getNextAvailableHandler.NewHandler(getNextAvailableUseCase, log)
	getEstimatedDelivery := getEstimatedDeliveryHandler.NewHandler(estimateDeliveryUseCase, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	listOrders := listOrdersHandler.NewHandler(ordersSvc, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	updateOrderStatus := updateOrderStatusHandler.NewHandler(ordersSvc, log)
	getTodayStats := getTodayStatsHandler.NewHandler(ordersSvc, log)

	r := mux.NewRouter()
	r.Use(middleware.Recover(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/api/health", health.Handle).Methods(http.MethodGet)

	// Admin notifications
	r.Handle("/ws", hub).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// CUSTOMER ROUTES
	// ============================================================

	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/quotes", quotePrice.Handle).Methods(http.MethodPost)
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/next-available", getNextAvailable.Handle).Methods(http.MethodGet)
	api.HandleFunc("/estimated-delivery", getEstimatedDelivery.Handle).Methods(http.MethodGet)
	api.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	api.HandleFunc("/orders", listOrders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)
	api.HandleFunc("/orders/{orderId}/status", updateOrderStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/stats/today", getTodayStats.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr: addr,
		// CORS wraps the router so preflight requests never hit the method matcher
		Handler:      middleware.CORS(cfg.Server.AllowedOrigin)(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
	hub.Close()

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
