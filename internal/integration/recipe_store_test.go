package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-cost-api/backend/internal/database"
	"github.com/pageza/recipe-cost-api/backend/internal/model"
	"github.com/pageza/recipe-cost-api/backend/internal/service"
	"github.com/pageza/recipe-cost-api/backend/internal/testhelpers"
)

func TestRecipeStoreOnPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewRecipeService(db)
	ctx := context.Background()

	recipe := &model.Recipe{
		RecipeName: "Shakshuka",
		Servings:   2,
		Ingredients: model.IngredientList{
			{Name: "Egg", Quantity: 4, Unit: "each", UnitCost: 0.3},
			{Name: "Crushed Tomato", Quantity: 1, Unit: "can", UnitCost: 1.9},
		},
	}

	t.Run("create and read back the jsonb document", func(t *testing.T) {
		saved, err := svc.CreateRecipe(ctx, recipe)
		require.NoError(t, err)

		got, err := svc.GetRecipe(ctx, saved.RecipeName)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, got.ID)
		assert.Equal(t, recipe.Ingredients, got.Ingredients)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		dup := *recipe
		dup.ID = uuid.Nil
		_, err := svc.CreateRecipe(ctx, &dup)
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("lib/pq reports unique violations", func(t *testing.T) {
		err := db.Exec(
			"INSERT INTO recipes (id, recipe_name, servings, ingredients, ingredient_index) VALUES (gen_random_uuid(), ?, 1, '[]', '')",
			recipe.RecipeName,
		).Error
		require.Error(t, err)
		assert.True(t, database.IsUniqueViolation(err))

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			assert.Equal(t, "unique_violation", pqErr.Code.Name())
		}
	})

	t.Run("search is case-insensitive on both fields", func(t *testing.T) {
		recipes, total, err := svc.ListRecipes(ctx, service.RecipeFilter{Name: "SHAK", Ingredient: "tomato"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Shakshuka", recipes[0].RecipeName)
	})

	t.Run("price a stored recipe", func(t *testing.T) {
		got, err := svc.GetRecipe(ctx, "Shakshuka")
		require.NoError(t, err)

		cost, err := service.CalculateRecipeCost(got, 0)
		require.NoError(t, err)
		assert.Equal(t, 3.1, cost.TotalCost)
		assert.Equal(t, 1.55, cost.CostPerServing)
		assert.Equal(t, 4.65, cost.SuggestedPrice)
	})

	t.Run("update and delete", func(t *testing.T) {
		updated, err := svc.UpdateRecipe(ctx, "Shakshuka", &model.Recipe{
			Servings:    3,
			Ingredients: model.IngredientList{{Name: "Egg", Quantity: 6, Unit: "each", UnitCost: 0.3}},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Servings)

		require.NoError(t, svc.DeleteRecipe(ctx, "Shakshuka"))
		assert.ErrorIs(t, svc.DeleteRecipe(ctx, "Shakshuka"), service.ErrNotFound)
	})
}
