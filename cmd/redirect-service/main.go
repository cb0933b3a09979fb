package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"affiliate-redirect/internal/affiliate/cache"
	"affiliate-redirect/internal/affiliate/database"
	httpdelivery "affiliate-redirect/internal/affiliate/delivery/http"
	"affiliate-redirect/internal/affiliate/enrichment"
	"affiliate-redirect/internal/affiliate/repository/sqlstore"
	"affiliate-redirect/internal/affiliate/usecase"
	"affiliate-redirect/internal/config"
	"affiliate-redirect/internal/infra/background"

	"github.com/redis/go-redis/v9"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("invalid config: " + err.Error())
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// Open database
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	logger.Info("database initialized", zap.String("dialect", string(db.Dialect)))

	// Optional Redis product cache
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable, product cache will miss", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		cancel()
	}

	// Optional GeoIP country fallback
	var countries usecase.CountryResolver = enrichment.NoopResolver{}
	if cfg.GeoIPDBPath != "" {
		resolver, err := enrichment.NewGeoIPResolver(cfg.GeoIPDBPath)
		if err != nil {
			logger.Warn("failed to open GeoIP database, country fallback disabled", zap.Error(err))
		} else {
			defer resolver.Close()
			countries = resolver
		}
	}

	// Wire dependencies
	products := cache.NewCachedProductRepository(
		sqlstore.NewProductRepository(db),
		cache.NewProductCache(rdb, cfg.ProductCacheTTL, logger),
	)
	clicks := sqlstore.NewClickRepository(db)
	service := usecase.NewTrackingService(products, clicks, countries)

	supervisor := background.NewSupervisor(logger, background.Options{
		TaskTimeout: cfg.TrackingTimeout,
		MaxPending:  int64(cfg.MaxPendingTracking),
	})

	handler := httpdelivery.NewHandler(service, supervisor, httpdelivery.Config{
		ClientIPHeader:  cfg.ClientIPHeader,
		CountryHeader:   cfg.CountryHeader,
		CORSAllowOrigin: cfg.CORSAllowOrigin,
	}, logger, db)
	rateLimiter := httpdelivery.NewRateLimiter(cfg.RateLimit, cfg.ClientIPHeader)
	defer rateLimiter.Stop()
	router := httpdelivery.NewRouter(handler, logger, rateLimiter)

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.Int("rate_limit", cfg.RateLimit),
			zap.Bool("redis_cache", rdb != nil),
			zap.Bool("geoip", cfg.GeoIPDBPath != ""),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Drain requests, then in-flight tracking writes
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	if err := supervisor.Shutdown(ctx); err != nil {
		logger.Warn("tracking writes abandoned at shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
