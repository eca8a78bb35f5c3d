package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/pageza/recipe-cost-api/backend/internal/model"
)

// Migrate creates or updates the recipe collection schema
func Migrate(db *gorm.DB, log *slog.Logger) error {
	log.Info("running auto-migration", "dialect", db.Dialector.Name())
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes: %w", err)
	}
	return nil
}

// Rollback drops the recipe collection
func Rollback(db *gorm.DB, log *slog.Logger) error {
	log.Warn("dropping recipes table", "dialect", db.Dialector.Name())
	if err := db.Migrator().DropTable(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to drop recipes: %w", err)
	}
	return nil
}
