package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/recipe-cost-api/backend/internal/database"
	"github.com/pageza/recipe-cost-api/backend/internal/model"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// RecipeFilter selects recipes by case-insensitive substring and paginates
type RecipeFilter struct {
	Name       string
	Ingredient string
	Page       int
	Limit      int
}

// Normalize fills in pagination defaults and clamps the limit
func (f RecipeFilter) Normalize() RecipeFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	f.Name = strings.TrimSpace(f.Name)
	f.Ingredient = strings.TrimSpace(f.Ingredient)
	return f
}

func (f RecipeFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = db.Where("name_index LIKE ? ESCAPE '\\'", likePattern(f.Name))
	}
	if f.Ingredient != "" {
		db = db.Where("ingredient_index LIKE ? ESCAPE '\\'", likePattern(f.Ingredient))
	}
	return db
}

// RecipeService is the accessor over the recipe collection
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe inserts the recipe unless its name is already taken
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrConflict, recipe.RecipeName)
		}
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return recipe, nil
}

// ListRecipes returns one page of matching recipes ordered by name, plus the
// total number of matches
func (s *RecipeService) ListRecipes(ctx context.Context, filter RecipeFilter) ([]model.Recipe, int64, error) {
	filter = filter.Normalize()

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Scopes(filter.scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	recipes := []model.Recipe{}
	err := s.db.WithContext(ctx).
		Scopes(filter.scope).
		Order("recipe_name ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}

	return recipes, total, nil
}

// GetRecipe retrieves a recipe by its exact name
func (s *RecipeService) GetRecipe(ctx context.Context, name string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "recipe_name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// UpdateRecipe replaces servings and ingredients of the named recipe. A
// non-empty RecipeName on the replacement renames it.
func (s *RecipeService) UpdateRecipe(ctx context.Context, name string, recipe *model.Recipe) (*model.Recipe, error) {
	newName := recipe.RecipeName
	if newName == "" {
		newName = name
	}

	result := s.db.WithContext(ctx).
		Model(&model.Recipe{}).
		Where("recipe_name = ?", name).
		Updates(map[string]interface{}{
			"recipe_name":      newName,
			"name_index":       model.FoldName(newName),
			"servings":         recipe.Servings,
			"ingredients":      recipe.Ingredients,
			"ingredient_index": recipe.Ingredients.SearchIndex(),
		})
	if result.Error != nil {
		if database.IsUniqueViolation(result.Error) {
			return nil, fmt.Errorf("%w: %s", ErrConflict, newName)
		}
		return nil, fmt.Errorf("failed to update recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return s.GetRecipe(ctx, newName)
}

// DeleteRecipe removes the named recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, name string) error {
	result := s.db.WithContext(ctx).Where("recipe_name = ?", name).Delete(&model.Recipe{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns user input into a lower-cased LIKE substring pattern
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}
