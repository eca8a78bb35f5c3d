package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-cost-api/backend/internal/service"
	"github.com/pageza/recipe-cost-api/backend/internal/types"
)

// CalculateCost handles POST /calculate-cost
func CalculateCost(c *gin.Context) {
	var req types.CalculateCostRequest
	if err := bindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	result, err := service.CalculateCost(req.ToCostInput())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}
