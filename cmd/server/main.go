package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/foodlens/backend/config"
	httpDelivery "github.com/foodlens/backend/internal/delivery/http"
	"github.com/foodlens/backend/internal/domain"
	"github.com/foodlens/backend/internal/infrastructure/cache"
	"github.com/foodlens/backend/internal/infrastructure/catalog"
	"github.com/foodlens/backend/internal/infrastructure/insight"
	"github.com/foodlens/backend/internal/infrastructure/openfoodfacts"
	"github.com/foodlens/backend/internal/usecase"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting FoodLens backend",
		zap.String("version", version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_type", cfg.Cache.Type),
		zap.Duration("cache_ttl", cfg.Cache.TTL),
	)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache(logger.Named("cache"), cfg.Cache.CleanupInterval)
	defer memoryCache.Close()

	offClient := openfoodfacts.NewClient(openfoodfacts.Config{
		BaseURL:           cfg.OpenFoodFacts.BaseURL,
		UserAgent:         cfg.OpenFoodFacts.UserAgent,
		Timeout:           cfg.OpenFoodFacts.Timeout,
		RequestsPerMinute: cfg.OpenFoodFacts.RequestsPerMinute,
	}, logger.Named("openfoodfacts"))

	// A nil *catalog.Catalog must not reach the interface.
	var fallback domain.ProductSource
	if cfg.Catalog.Enabled {
		seed, err := catalog.Load(cfg.Catalog.Path, logger.Named("catalog"))
		if err != nil {
			logger.Fatal("Failed to load product catalog", zap.Error(err))
		}
		fallback = seed
		logger.Info("Local catalog loaded", zap.Int("products", seed.Len()))
	}

	var insights domain.InsightAnalyzer
	if cfg.Insights.Enabled {
		client, err := insight.NewClient(insight.Config{
			APIKey:  cfg.Insights.APIKey,
			BaseURL: cfg.Insights.BaseURL,
			Model:   cfg.Insights.Model,
			Timeout: cfg.Insights.Timeout,
		}, logger.Named("insight"))
		if err != nil {
			logger.Fatal("Failed to initialize insights client", zap.Error(err))
		}
		insights = client
		logger.Info("AI insights enabled", zap.String("model", cfg.Insights.Model))
	}

	// Initialize usecase layer
	productService := usecase.NewProductService(
		memoryCache,
		offClient,
		fallback,
		usecase.ProductServiceConfig{CacheTTL: cfg.Cache.TTL},
		logger.Named("products"),
	)
	reportService := usecase.NewReportService(productService, insights, logger.Named("reports"))

	// Create HTTP handler and router
	handler := httpDelivery.NewHandler(reportService, logger.Named("http"))
	router := httpDelivery.SetupRouter(cfg, handler, logger.Named("http"))

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// newLogger builds a production JSON logger in production and a console
// logger elsewhere, both at the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Server.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
