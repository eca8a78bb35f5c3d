package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/recipe-cost-api/backend/config"
	"github.com/pageza/recipe-cost-api/backend/internal/api"
	"github.com/pageza/recipe-cost-api/backend/internal/middleware"
)

// SetupRouter configures the application routes. limiter may be nil, in
// which case requests are not rate limited.
func SetupRouter(
	cfg *config.Config,
	log *slog.Logger,
	db *gorm.DB,
	recipeHandler *api.RecipeHandler,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Health checks stay open for load balancers and probes
	router.GET("/", api.HealthCheck)
	router.GET("/health", api.ReadinessCheck(db))

	// Rate limiting runs before auth so failed key guesses are counted too
	protected := router.Group("")
	if limiter != nil {
		protected.Use(limiter.Middleware())
	}
	protected.Use(middleware.APIKeyAuth(cfg.APIKey))
	recipeHandler.RegisterRoutes(protected)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "route not found"})
	})

	return router
}
