package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pageza/recipe-cost-api/backend/config"
	"github.com/pageza/recipe-cost-api/backend/internal/database"
	"github.com/pageza/recipe-cost-api/backend/internal/logger"
	"github.com/pageza/recipe-cost-api/backend/internal/model"
	"github.com/pageza/recipe-cost-api/backend/internal/service"
)

var seedRecipes = []model.Recipe{
	{
		RecipeName: "Classic Pancakes",
		Servings:   4,
		Ingredients: model.IngredientList{
			{Name: "Flour", Quantity: 2, Unit: "cup", UnitCost: 0.45},
			{Name: "Milk", Quantity: 1.5, Unit: "cup", UnitCost: 0.35},
			{Name: "Egg", Quantity: 2, Unit: "each", UnitCost: 0.3},
			{Name: "Butter", Quantity: 3, Unit: "tbsp", UnitCost: 0.2},
		},
	},
	{
		RecipeName: "Tomato Basil Pasta",
		Servings:   2,
		Ingredients: model.IngredientList{
			{Name: "Spaghetti", Quantity: 0.5, Unit: "lb", UnitCost: 1.8},
			{Name: "Tomato", Quantity: 4, Unit: "each", UnitCost: 0.6},
			{Name: "Basil", Quantity: 0.25, Unit: "bunch", UnitCost: 2.5},
			{Name: "Olive Oil", Quantity: 2, Unit: "tbsp", UnitCost: 0.25},
			{Name: "Garlic", Quantity: 2, Unit: "clove", UnitCost: 0.1},
		},
	},
	{
		RecipeName: "Chicken Caesar Salad",
		Servings:   3,
		Ingredients: model.IngredientList{
			{Name: "Chicken Breast", Quantity: 1, Unit: "lb", UnitCost: 4.5},
			{Name: "Romaine", Quantity: 1, Unit: "head", UnitCost: 2},
			{Name: "Parmesan", Quantity: 0.25, Unit: "cup", UnitCost: 3.2},
			{Name: "Croutons", Quantity: 1, Unit: "cup", UnitCost: 0.9},
		},
	},
}

func main() {
	markup := flag.Float64("markup", service.DefaultMarkup, "Markup multiplier used for the logged cost summary")
	flag.Parse()

	if err := run(*markup); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(markup float64) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.InMemoryDatabase() {
		return errors.New("refusing to seed an in-memory database; set DB_DRIVER=postgres or a file SQLITE_PATH")
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

	if err := database.Migrate(db, log); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	created, err := seed(ctx, service.NewRecipeService(db), log, markup)
	if err != nil {
		return err
	}
	log.Info("seeding complete", "created", created, "total", len(seedRecipes))
	return nil
}

// seed saves every seed recipe that does not exist yet and returns how many
// were created
func seed(ctx context.Context, recipes service.IRecipeService, log *slog.Logger, markup float64) (int, error) {
	created := 0
	for i := range seedRecipes {
		recipe := seedRecipes[i]
		saved, err := recipes.CreateRecipe(ctx, &recipe)
		if errors.Is(err, service.ErrConflict) {
			log.Info("recipe already exists, skipping", "recipe_name", recipe.RecipeName)
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to save %q: %w", recipe.RecipeName, err)
		}
		created++

		cost, err := service.CalculateRecipeCost(saved, markup)
		if err != nil {
			log.Warn("failed to price recipe", "recipe_name", saved.RecipeName, "error", err)
			continue
		}
		log.Info("seeded recipe",
			"recipe_name", saved.RecipeName,
			"total_cost", cost.TotalCost,
			"cost_per_serving", cost.CostPerServing,
			"suggested_price", cost.SuggestedPrice,
		)
	}
	return created, nil
}
