package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/recipe-cost-api/backend/config"
	"github.com/pageza/recipe-cost-api/backend/internal/logger"
	"github.com/pageza/recipe-cost-api/backend/internal/model"
)

func newSQLiteConfig() *config.Config {
	return &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		LogLevel:   "error",
	}
}

func TestNewSQLiteAndMigrate(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "error")

	db, err := New(newSQLiteConfig(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db, log))
	require.NoError(t, HealthCheck(context.Background(), db))

	recipe := model.Recipe{RecipeName: "Toast", Servings: 1, Ingredients: model.IngredientList{{Name: "Bread", Quantity: 1, Unit: "slice", UnitCost: 0.2}}}
	require.NoError(t, db.Create(&recipe).Error)

	dup := model.Recipe{RecipeName: "Toast", Servings: 2, Ingredients: recipe.Ingredients}
	err = db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestNewUnsupportedDriver(t *testing.T) {
	_, err := New(&config.Config{DBDriver: "mongo"}, logger.NewWithWriter(io.Discard, "error"))
	assert.Error(t, err)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.True(t, IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23502"}))
	assert.True(t, IsUniqueViolation(errors.New("UNIQUE constraint failed: recipes.recipe_name")))
}

func TestRollbackDropsRecipes(t *testing.T) {
	log := logger.NewWithWriter(io.Discard, "error")

	db, err := New(newSQLiteConfig(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, Migrate(db, log))
	assert.True(t, db.Migrator().HasTable(&model.Recipe{}))

	require.NoError(t, Rollback(db, log))
	assert.False(t, db.Migrator().HasTable(&model.Recipe{}))
}
