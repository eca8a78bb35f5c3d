package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-cost-api/backend/config"
	"github.com/pageza/recipe-cost-api/backend/internal/api"
	"github.com/pageza/recipe-cost-api/backend/internal/database"
	"github.com/pageza/recipe-cost-api/backend/internal/logger"
	"github.com/pageza/recipe-cost-api/backend/internal/middleware"
	"github.com/pageza/recipe-cost-api/backend/internal/router"
	"github.com/pageza/recipe-cost-api/backend/internal/server"
	"github.com/pageza/recipe-cost-api/backend/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.InMemoryDatabase() {
		log.Warn("using in-memory database; recipes are lost on restart")
	}

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

	// Rate limiting is optional; without Redis every request is let through
	var limiter *middleware.RateLimiter
	if cfg.RedisEnabled() {
		redisClient, err := database.NewRedisClient(cfg, log)
		if err != nil {
			log.Warn("rate limiting disabled", "error", err)
		} else {
			defer redisClient.Close()
			limiter = middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
				Window: cfg.RateLimitWindow,
				Limit:  cfg.RateLimit,
			}, log)
		}
	}

	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(db))
	srv := server.New(cfg, router.SetupRouter(cfg, log, db, recipeHandler, limiter), log)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Info("received signal", "signal", sig.String())
	}

	log.Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}
