package main

import (
	"context"
	"log/slog"
	"os"

	companymigrations "github.com/onyxtech/onyx-invoice/migrations/company"
	"github.com/onyxtech/onyx-invoice/pkg/config"
	"github.com/onyxtech/onyx-invoice/pkg/logger"
	"github.com/onyxtech/onyx-invoice/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, companymigrations.FS, log); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
}
