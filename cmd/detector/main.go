package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/config"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/console"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/metrics"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/platform/storage"
	"github.com/Sumetha30/Spam-call-Detection-And-Blocker/internal/service"
)

func main() {
	dotEnvErr := godotenv.Load()

	userPtr := flag.String("user", "", "Your phone number; owns the block list")
	dataDirPtr := flag.String("data-dir", "", "Directory for the CSV files (overrides DATA_DIR)")
	flag.Parse()

	if *dataDirPtr != "" {
		os.Setenv("DATA_DIR", *dataDirPtr)
	}
	// Keep the prompt readable unless asked otherwise.
	if os.Getenv("LOG_LEVEL") == "" {
		os.Setenv("LOG_LEVEL", "warn")
	}

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
		logger.Info("No .env file found, using system environment variables")
	}

	repo, closeRepo, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closeRepo()

	ctx := context.Background()
	svc, err := service.NewDetectorService(ctx, repo, service.Options{
		PromotionThreshold: cfg.PromotionThreshold,
		DefaultRegion:      cfg.DefaultRegion,
	}, metrics.NewMetrics(prometheus.NewRegistry()), logger)
	if err != nil {
		logger.Fatal("Failed to initialize detector", zap.Error(err))
	}

	session := console.NewSession(svc, os.Stdout, *userPtr)
	if err := session.Run(ctx, os.Stdin); err != nil {
		logger.Error("Session ended with error", zap.Error(err))
		os.Exit(1)
	}
}
