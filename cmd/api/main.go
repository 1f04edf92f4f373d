package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/config"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/metrics"
	httpHandler "github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/platform/http"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/platform/storage"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/service"
)

func main() {
	dotEnvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if dotEnvErr != nil {
		logger.Warn("No .env file found, using system environment variables")
	}

	if cfg.APIKey == "" {
		logger.Fatal("API_MASTER_KEY is required in .env")
	}

	logger.Info("Starting Spam Call Detector API",
		zap.String("backend", cfg.StorageBackend),
		zap.Int("promotion_threshold", cfg.PromotionThreshold))

	repo, closeRepo, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeRepo()

	svc, err := service.NewDetectorService(context.Background(), repo, service.Options{
		PromotionThreshold: cfg.PromotionThreshold,
		DefaultRegion:      cfg.DefaultRegion,
	}, metrics.NewMetrics(prometheus.DefaultRegisterer), logger)
	if err != nil {
		logger.Fatal("Failed to initialize detector", zap.Error(err))
	}

	handler := httpHandler.NewHandler(svc, logger)
	r := httpHandler.NewRouter(handler, cfg.APIKey, nil)

	logger.Info("Server listening", zap.String("addr", "http://localhost"+cfg.HTTPPort))
	if err := http.ListenAndServe(cfg.HTTPPort, r); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}
}
