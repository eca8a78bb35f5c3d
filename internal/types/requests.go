package types

import (
	"strings"

	"github.com/pageza/recipe-cost-api/backend/internal/model"
	"github.com/pageza/recipe-cost-api/backend/internal/service"
)

// IngredientRequest is one ingredient line in a request body. UnitCost is a
// pointer so that an explicit 0 is accepted while a missing value is not.
type IngredientRequest struct {
	Name     string   `json:"name" binding:"required"`
	Quantity float64  `json:"quantity" binding:"required,gt=0"`
	Unit     string   `json:"unit" binding:"required"`
	UnitCost *float64 `json:"unit_cost" binding:"required,gte=0"`
}

// CalculateCostRequest represents the request body for POST /calculate-cost
type CalculateCostRequest struct {
	RecipeName  string              `json:"recipe_name" binding:"required"`
	Servings    int                 `json:"servings" binding:"required,gt=0"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
	Markup      float64             `json:"markup"`
}

// SaveRecipeRequest represents the request body for POST /save-recipe
type SaveRecipeRequest struct {
	RecipeName  string              `json:"recipe_name" binding:"required,max=255"`
	Servings    int                 `json:"servings" binding:"required,gt=0"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
}

// UpdateRecipeRequest represents the request body for PUT /recipes/:name.
// An empty RecipeName keeps the current name.
type UpdateRecipeRequest struct {
	RecipeName  string              `json:"recipe_name" binding:"omitempty,max=255"`
	Servings    int                 `json:"servings" binding:"required,gt=0"`
	Ingredients []IngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
}

// ListRecipesQuery represents the query string of GET /recipes
type ListRecipesQuery struct {
	Name       string `form:"name" json:"name"`
	Ingredient string `form:"ingredient" json:"ingredient"`
	Page       int    `form:"page" json:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
}

// Filter converts the query into a service filter
func (q ListRecipesQuery) Filter() service.RecipeFilter {
	return service.RecipeFilter{
		Name:       q.Name,
		Ingredient: q.Ingredient,
		Page:       q.Page,
		Limit:      q.Limit,
	}
}

// ToCostInput converts the request into calculator input
func (r *CalculateCostRequest) ToCostInput() service.CostInput {
	return service.CostInput{
		RecipeName:  strings.TrimSpace(r.RecipeName),
		Servings:    r.Servings,
		Ingredients: toIngredients(r.Ingredients),
		Markup:      r.Markup,
	}
}

// ToModel converts the request into a recipe document
func (r *SaveRecipeRequest) ToModel() *model.Recipe {
	return &model.Recipe{
		RecipeName:  strings.TrimSpace(r.RecipeName),
		Servings:    r.Servings,
		Ingredients: toIngredients(r.Ingredients),
	}
}

// ToModel converts the request into a replacement recipe document
func (r *UpdateRecipeRequest) ToModel() *model.Recipe {
	return &model.Recipe{
		RecipeName:  strings.TrimSpace(r.RecipeName),
		Servings:    r.Servings,
		Ingredients: toIngredients(r.Ingredients),
	}
}

func toIngredients(in []IngredientRequest) model.IngredientList {
	out := make(model.IngredientList, 0, len(in))
	for _, ing := range in {
		var unitCost float64
		if ing.UnitCost != nil {
			unitCost = *ing.UnitCost
		}
		out = append(out, model.Ingredient{
			Name:     strings.TrimSpace(ing.Name),
			Quantity: ing.Quantity,
			Unit:     strings.TrimSpace(ing.Unit),
			UnitCost: unitCost,
		})
	}
	return out
}
