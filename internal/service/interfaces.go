package service

import (
	"context"

	"github.com/pageza/recipe-cost-api/backend/internal/model"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	ListRecipes(ctx context.Context, filter RecipeFilter) ([]model.Recipe, int64, error)
	GetRecipe(ctx context.Context, name string) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, name string, recipe *model.Recipe) (*model.Recipe, error)
	DeleteRecipe(ctx context.Context, name string) error
}

var _ IRecipeService = (*RecipeService)(nil)
