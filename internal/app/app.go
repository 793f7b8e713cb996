// Package app wires configuration, storage and services into a runnable application.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/cache"
	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/metrics"
	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/router"
	"github.com/pageza/cookbook/backend/internal/service"
)

// App holds the long-lived dependencies shared by the binaries
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client // nil when Redis is not configured or unreachable
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	Recipes  *service.RecipeService
	Auth     *service.AuthService
}

// New opens the database, migrates it, connects Redis when configured and builds the services
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a := &App{Config: cfg, DB: db}

	if err := database.RunMigrations(db); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if cfg.RedisEnabled() {
		client, err := database.NewRedisClient(ctx, cfg)
		switch {
		case err == nil:
			a.Redis = client
		case cfg.CacheBackend == config.CacheRedis:
			a.Close()
			return nil, err
		default:
			// Continue without rate limiting if Redis is not available
			log.Printf("Warning: Failed to connect to Redis: %v", err)
		}
	}

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.Metrics = metrics.New(a.Registry)

	recipeCache, err := cache.New(cfg.CacheBackend, a.Redis, cfg.CacheTTL)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Recipes = service.NewRecipeService(
		database.NewRecipeStore(db),
		database.NewIngredientStore(db),
		cache.NewInstrumentedCache(recipeCache, a.Metrics),
		service.WithMetrics(a.Metrics),
	)
	a.Auth = service.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpiration)
	return a, nil
}

// Router builds the HTTP handler for the application
func (a *App) Router() *gin.Engine {
	var limiter *middleware.RateLimiter
	if a.Redis != nil && a.Config.RecipeCreationLimit > 0 {
		limiter = middleware.NewRecipeCreationRateLimiter(a.Redis, a.Config.RecipeCreationLimit)
	}

	return router.SetupRouter(router.Options{
		DB:              a.DB,
		Recipes:         a.Recipes,
		Auth:            a.Auth,
		Gatherer:        a.Registry,
		AllowedOrigins:  a.Config.CORSAllowedOrigins,
		CreationLimiter: limiter,
	})
}

// Close releases the database and Redis connections
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
