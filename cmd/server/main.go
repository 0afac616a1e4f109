package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wrist_surgery_app_go/config"
	"wrist_surgery_app_go/db"
	"wrist_surgery_app_go/handlers"
	"wrist_surgery_app_go/logging"
	"wrist_surgery_app_go/middleware"
	"wrist_surgery_app_go/models"
	"wrist_surgery_app_go/services"
	"wrist_surgery_app_go/services/geo"
	"wrist_surgery_app_go/services/metrics"
	"wrist_surgery_app_go/services/notify"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Lead log database
	if err := db.Initialize(cfg.DBPath, cfg.Environment, logger); err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Lead{}); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	// Location resolver
	var ipCache geo.IPCache = geo.NewMemoryIPCache(cfg.IPCacheTTL)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, using in-memory ip cache", zap.Error(err))
		} else {
			ipCache = geo.NewRedisIPCache(rdb, cfg.IPCacheTTL, logger)
			logger.Info("ip location cache on redis")
		}
		cancel()
	}

	positionOpts := models.DefaultPositionOptions()
	positionOpts.Timeout = cfg.GeolocationTimeout

	resolver := geo.NewResolver(
		geo.NewNominatimClient(cfg.ReverseGeocodeURL, cfg.GeocoderUserAgent, cfg.LookupTimeout),
		geo.NewCachedIPLocator(geo.NewIPAPIClient(cfg.IPGeolocationURL, cfg.LookupTimeout), ipCache),
		positionOpts,
		m,
		logger,
	)

	// Appointment workflow
	notifier, err := notify.NewNotifier(cfg, logger)
	if err != nil {
		logger.Fatal("failed to configure lead delivery", zap.Error(err))
	}
	logger.Info("lead delivery configured", zap.String("channel", notifier.Channel()), zap.Bool("test_mode", cfg.EmailTestMode))

	archive := services.NewLeadArchive(services.NewStorage(cfg, logger))
	workflow := services.NewAppointmentWorkflow(cfg, notifier, db.DB, archive, m, logger)

	h := handlers.New(cfg, resolver, workflow, db.DB, logger)
	middleware.InitAssetVersions()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg.IsProduction()))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	// Public routes
	e.GET("/", h.Landing)
	e.POST("/api/location", h.ResolveLocation, middleware.LocationRateLimiter.Middleware())
	e.POST("/appointment", h.SubmitAppointment, middleware.LeadFormRateLimiter.Middleware())
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Lead export
	admin := e.Group("/admin", middleware.AdminAuth(cfg.AdminUser, cfg.AdminPasswordHash))
	admin.GET("/leads.xlsx", h.ExportLeads)

	// Start server
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort), zap.String("environment", cfg.Environment))
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
