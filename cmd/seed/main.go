// Command seed loads the fixed demo product catalog into the database.
// Existing products are left untouched; running it twice is safe.
package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	catalogapp "github.com/claimsdesk/backend/internal/application/catalog"
	"github.com/claimsdesk/backend/internal/infrastructure/config"
	"github.com/claimsdesk/backend/internal/infrastructure/logger"
	"github.com/claimsdesk/backend/internal/infrastructure/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	productRepo := persistence.NewGormProductRepository(db.DB)
	seeder := catalogapp.NewSeedService(productRepo, log)

	result, err := seeder.Seed(ctx)
	if err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}

	log.Info("Seeding finished",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
	)
}
