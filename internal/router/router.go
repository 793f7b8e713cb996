package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/internal/api"
	"github.com/pageza/cookbook/backend/internal/middleware"
	"github.com/pageza/cookbook/backend/internal/models"
	"github.com/pageza/cookbook/backend/internal/service"
)

// Options holds everything the router wires into handlers
type Options struct {
	DB             *gorm.DB
	Recipes        service.IRecipeService
	Auth           service.IAuthService
	Gatherer       prometheus.Gatherer
	AllowedOrigins []string
	// CreationLimiter is optional; nil disables rate limiting of recipe creation
	CreationLimiter *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.ErrorHandler())

	// Health check endpoint (no auth required)
	router.GET("/health", api.HealthCheck(opts.DB))
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	apiGroup := router.Group("/api")
	api.NewAuthHandler(opts.Auth).RegisterRoutes(apiGroup)

	// Protected routes
	protected := apiGroup.Group("")
	protected.Use(middleware.AuthMiddleware(opts.Auth))
	protected.Use(middleware.RequireRole(models.RoleUser, models.RoleAdmin))
	{
		api.NewRecipeHandler(opts.Recipes, opts.CreationLimiter).RegisterRoutes(protected)
		if opts.CreationLimiter != nil {
			api.RegisterRateLimitRoutes(protected, opts.CreationLimiter)
		}
	}

	return router
}
