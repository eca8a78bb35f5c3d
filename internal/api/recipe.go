package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-cost-api/backend/internal/service"
	"github.com/pageza/recipe-cost-api/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
}

func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/calculate-cost", CalculateCost)
	router.POST("/save-recipe", h.SaveRecipe)

	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:name", h.GetRecipe)
		recipes.PUT("/:name", h.UpdateRecipe)
		recipes.DELETE("/:name", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) SaveRecipe(c *gin.Context) {
	var req types.SaveRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipeService.CreateRecipe(c.Request.Context(), req.ToModel())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	var query types.ListRecipesQuery
	if err := bindQuery(c, &query); err != nil {
		_ = c.Error(err)
		return
	}

	filter := query.Filter().Normalize()
	recipes, total, err := h.recipeService.ListRecipes(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.RecipeListResponse{
		Recipes: recipes,
		Page:    filter.Page,
		Limit:   filter.Limit,
		Total:   total,
	})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	var req types.UpdateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), c.Param("name"), req.ToModel())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	name := c.Param("name")
	if err := h.recipeService.DeleteRecipe(c.Request.Context(), name); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.DeleteRecipeResponse{
		Message:    "Recipe deleted successfully",
		RecipeName: name,
	})
}
