package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/pageza/recipe-cost-api/backend/config"
	"github.com/pageza/recipe-cost-api/backend/internal/database"
	"github.com/pageza/recipe-cost-api/backend/internal/logger"
)

func main() {
	// Parse command line flags
	rollback := flag.Bool("rollback", false, "Drop the recipes table instead of migrating")
	flag.Parse()

	if err := run(*rollback); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}

func run(rollback bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.InMemoryDatabase() {
		return errors.New("refusing to migrate an in-memory database; set DB_DRIVER=postgres or a file SQLITE_PATH")
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	db, err := database.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("failed to close database", "error", err)
		}
	}()

	if rollback {
		if err := database.Rollback(db, log); err != nil {
			return err
		}
		log.Info("rollback complete")
		return nil
	}

	if err := database.Migrate(db, log); err != nil {
		return err
	}
	log.Info("migrations complete")
	return nil
}
