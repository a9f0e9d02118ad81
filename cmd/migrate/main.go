// Command migrate applies the embedded schema migrations to the database
// named by DATABASE_DSN. The server does the same on startup when the
// postgres backend is selected; this command exists for deploys that run
// migrations as a separate step.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/dictation-builder/internal/adapter/postgres"
	"github.com/heartmarshall/dictation-builder/internal/app"
	"github.com/heartmarshall/dictation-builder/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Database.DSN == "" {
		logger.Error("DATABASE_DSN is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := postgres.Migrate(ctx, logger, cfg.Database.DSN); err != nil {
		logger.Error("migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
