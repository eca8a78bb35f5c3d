package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-cost-api/backend/internal/database"
	"github.com/pageza/recipe-cost-api/backend/internal/types"
)

const Version = "v1.0.0"

// HealthCheck returns the liveness status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		Status:  "healthy",
		Message: "Recipe Cost API is running",
		Version: Version,
	})
}

// ReadinessCheck also pings the database and answers 503 when it is unreachable
func ReadinessCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		resp := types.HealthResponse{
			Status:   "healthy",
			Message:  "Recipe Cost API is running",
			Version:  Version,
			Database: "up",
		}
		if err := database.HealthCheck(ctx, db); err != nil {
			resp.Status = "unhealthy"
			resp.Database = "down"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
