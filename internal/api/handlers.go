package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/middleware"
)

// HealthCheck returns the health status of the API and its database
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := database.HealthCheck(c.Request.Context(), db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Cookbook API is running",
		})
	}
}

// RegisterRateLimitRoutes exposes the caller's remaining recipe creations. It expects AuthMiddleware on router.
func RegisterRateLimitRoutes(router *gin.RouterGroup, creationLimiter *middleware.RateLimiter) {
	router.GET("/rate-limits/recipe-creation", func(c *gin.Context) {
		userID, exists := c.Get(middleware.ContextUserID)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}

		quota, err := creationLimiter.Peek(c.Request.Context(), fmt.Sprint(userID))
		if err != nil {
			internalError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"limit":      quota.Limit,
			"remaining":  quota.Remaining,
			"reset_time": quota.ResetAt.Unix(),
			"window":     creationLimiter.Policy().Window.String(),
		})
	})
}
