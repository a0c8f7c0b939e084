package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/creatorpulse/creatorpulse/internal/api"
	"github.com/creatorpulse/creatorpulse/internal/cache"
	"github.com/creatorpulse/creatorpulse/internal/db"
	"github.com/creatorpulse/creatorpulse/internal/scraper"
	"github.com/creatorpulse/creatorpulse/pkg/config"
	"github.com/creatorpulse/creatorpulse/pkg/logging"
	"github.com/creatorpulse/creatorpulse/pkg/telemetry"
)

// The refresher makes one pass over all connected accounts and re-runs the
// analytics pipeline for each. A failed account is logged and skipped; the
// pass continues.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()

	logger := logging.GetLogger().With(zap.String("component", "refresher"))
	logger.Info("Starting CreatorPulse refresher")

	telemetryShutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer telemetryShutdown()

	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	redisCache, err := cache.New(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisCache.Close()

	scraperClient, err := scraper.New(&cfg.Scraper)
	if err != nil {
		logger.Fatal("Failed to initialize scraper client", zap.Error(err))
	}

	repo := db.NewRepository(database.DB)
	analyticsRepo := db.NewAnalyticsRepository(repo)
	accountRepo := db.NewAccountRepository(repo)

	pipelines, err := api.BuildPipelines(scraperClient, redisCache, analyticsRepo)
	if err != nil {
		logger.Fatal("Failed to build pipelines", zap.Error(err))
	}

	ctx := context.Background()

	accounts, err := accountRepo.List(ctx)
	if err != nil {
		logger.Fatal("Failed to list connected accounts", zap.Error(err))
	}

	logger.Info("Refreshing connected accounts", zap.Int("count", len(accounts)))

	var failed int
	for _, account := range accounts {
		pipeline, ok := pipelines[account.Platform]
		if !ok {
			logger.Warn("Skipping account on unknown platform",
				zap.String("platform", account.Platform),
				zap.String("user_id", account.UserID.String()))
			continue
		}

		result, err := pipeline.Run(ctx, account.UserID, account.Handle, 0)
		if err != nil {
			failed++
			logger.Error("Refresh failed for account",
				zap.String("platform", account.Platform),
				zap.String("handle", account.Handle),
				zap.String("user_id", account.UserID.String()),
				zap.Error(err))
			continue
		}

		logger.Info("Refreshed account",
			zap.String("platform", account.Platform),
			zap.String("handle", account.Handle),
			zap.Int("handle_score", result.HandleScore),
			zap.Int("post_count", result.PostCount))
	}

	logger.Info("Refresh pass complete",
		zap.Int("total", len(accounts)),
		zap.Int("failed", failed))

	if failed > 0 {
		os.Exit(1)
	}
}
