package types

import "github.com/pageza/recipe-cost-api/backend/internal/model"

// RecipeListResponse is one page of GET /recipes
type RecipeListResponse struct {
	Recipes []model.Recipe `json:"recipes"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Total   int64          `json:"total"`
}

// DeleteRecipeResponse confirms a deletion
type DeleteRecipeResponse struct {
	Message    string `json:"message"`
	RecipeName string `json:"recipe_name"`
}

// HealthResponse is returned by the health endpoints
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Version  string `json:"version"`
	Database string `json:"database,omitempty"`
}
