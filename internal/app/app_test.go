package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/app"
	"github.com/pageza/cookbook/backend/internal/models"
)

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		ServerHost:          "127.0.0.1",
		ServerPort:          "0",
		DBDriver:            config.DriverSQLite,
		SQLitePath:          filepath.Join(t.TempDir(), "cookbook.db"),
		CacheBackend:        config.CacheMemory,
		JWTSecret:           "test-secret",
		JWTExpiration:       time.Hour,
		CORSAllowedOrigins:  []string{"http://localhost:4200"},
		RecipeCreationLimit: 5,
	}
}

func TestNewWithSQLite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := app.New(context.Background(), sqliteConfig(t))
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Redis)

	created, err := a.Recipes.CreateRecipe(context.Background(), &models.Recipe{
		Name:         "Soup",
		Category:     models.CategoryStarter,
		Instructions: "Boil",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	r := a.Router()
	for _, path := range []string{"/health", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNewRedisBackendUnreachable(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.CacheBackend = config.CacheRedis
	cfg.RedisURL = "redis://127.0.0.1:1"

	_, err := app.New(context.Background(), cfg)
	assert.ErrorContains(t, err, "failed to connect to Redis")
}

func TestNewRedisOptionalUnreachable(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.RedisURL = "redis://127.0.0.1:1"

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()
	assert.Nil(t, a.Redis)
}
