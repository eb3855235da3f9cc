package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-directory/config"
	deliveryHttp "hospital-directory/internal/delivery/http"
	"hospital-directory/internal/delivery/http/handler"
	"hospital-directory/internal/delivery/http/middleware"
	"hospital-directory/internal/infrastructure/cache"
	"hospital-directory/internal/infrastructure/metrics"
	"hospital-directory/internal/infrastructure/upstream"
	"hospital-directory/internal/repository"
	"hospital-directory/internal/service"
	"hospital-directory/internal/usecase"
	"hospital-directory/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Cache       *cache.ResponseCache
	Warmer      *service.CatalogWarmer
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	setupLogger(cfg.App.LogLevel)
	log := logrus.StandardLogger()
	log.Info("Configuration loaded successfully")

	// Redis is an optional second cache tier
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			log.Warnf("Redis unavailable, caching in memory only: %v", err)
		} else {
			app.RedisClient = redisClient
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	directoryMetrics := metrics.NewDirectoryMetrics(reg)

	responseCache, err := cache.NewResponseCache(cfg.Cache.MaxEntries, app.RedisClient, log, directoryMetrics)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}
	app.Cache = responseCache

	// Initialize all layers
	app.Server, app.Warmer = initializeServer(cfg, log, responseCache, directoryMetrics, reg)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	responseCache *cache.ResponseCache,
	directoryMetrics *metrics.DirectoryMetrics,
	gatherer prometheus.Gatherer,
) (*http.Server, *service.CatalogWarmer) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize upstream client
	httpClient := &http.Client{Timeout: cfg.Upstream.Timeout}
	session := upstream.NewSession(cfg.Upstream, httpClient, log)
	client := upstream.NewClient(cfg.Upstream, cfg.Cache.APITTL, session, responseCache, directoryMetrics, log)

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(client, cfg.Cache.SpecialtiesTTL, log)

	// Initialize services
	warmer := service.NewCatalogWarmer(catalogRepo, cfg.Cache.WarmInterval, log)

	// Initialize usecases
	scheduleUsecase := usecase.NewScheduleUsecase(log, catalogRepo, directoryMetrics)
	doctorUsecase := usecase.NewDoctorUsecase(log, catalogRepo)
	specialtyUsecase := usecase.NewSpecialtyUsecase(log, catalogRepo)
	locationUsecase := usecase.NewLocationUsecase(log, catalogRepo)

	// Initialize handlers
	specialtyHandler := handler.NewSpecialtyHandler(specialtyUsecase, doctorUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	locationHandler := handler.NewLocationHandler(locationUsecase, customValidator)
	kioskHandler := handler.NewKioskHandler(cfg.Kiosk)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.Rate.RPS, cfg.Rate.Burst, cfg.Rate.TrustedProxies...)

	// Initialize router
	router := deliveryHttp.NewRouter(
		specialtyHandler,
		doctorHandler,
		scheduleHandler,
		locationHandler,
		kioskHandler,
		corsMiddleware,
		loggingMiddleware,
		rateLimitMiddleware,
		gatherer,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, warmer
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Keep static catalogs cached
	app.Warmer.Start(context.Background())

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Stop background work and close connections
	app.Warmer.Stop()
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases the Redis connection, if any
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
