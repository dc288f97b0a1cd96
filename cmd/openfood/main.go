package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"openfood/internal/config"
	"openfood/internal/database"
	"openfood/internal/schema"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("driver", cfg.Database.Driver).Msg("starting openfood schema setup")

	// Stop early on interrupt; the store calls observe ctx.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	manager := schema.NewManager(db.DB, logger)
	if err := manager.Ensure(ctx); err != nil {
		return err
	}

	tables, err := manager.Inspect(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	for _, t := range tables {
		logger.Info().
			Str("table", t.Name).
			Str("columns", strings.Join(t.Columns, ",")).
			Msg("table ready")
	}

	logger.Info().Int("tables", len(tables)).Msg("schema setup completed")

	return nil
}
