package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookbook/backend/internal/testhelpers"
)

func withUser(id string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextUserID, id)
		c.Next()
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	client := testhelpers.SetupTestRedis(t)
	limiter := NewRecipeCreationRateLimiter(client, 2)

	r := newTestEngine(withUser("user-1"), limiter.RateLimitMiddleware())
	r.POST("/api/recipes", func(c *gin.Context) { c.Status(http.StatusCreated) })

	for i, want := range []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/recipes", nil))
		assert.Equal(t, want, w.Code, "request %d", i+1)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	quota, err := limiter.Peek(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Zero(t, quota.Remaining)
	assert.Equal(t, 3, quota.Used)
	assert.True(t, quota.ResetAt.After(time.Now()))

	quota, err = limiter.Peek(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, 2, quota.Remaining)
	assert.False(t, quota.Exceeded())
}

func TestRateLimiterWindowRollover(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}
	client := testhelpers.SetupTestRedis(t)
	limiter := NewRecipeCreationRateLimiter(client, 1)
	now := time.Date(2024, 3, 1, 10, 59, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	ctx := context.Background()
	quota, err := limiter.Take(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, quota.Exceeded())
	assert.Equal(t, time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC), quota.ResetAt)

	quota, err = limiter.Take(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, quota.Exceeded())

	now = now.Add(2 * time.Minute)
	quota, err = limiter.Take(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, quota.Exceeded())
	assert.Equal(t, 1, quota.Used)
}

func TestRateLimitMiddlewareRedisDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	defer client.Close()
	limiter := NewRecipeCreationRateLimiter(client, 1)

	r := newTestEngine(withUser("user-1"), limiter.RateLimitMiddleware())
	r.POST("/api/recipes", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/recipes", nil))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "rate limit check failed", w.Header().Get("X-RateLimit-Error"))
}

func TestQuotaExceeded(t *testing.T) {
	limiter := NewRecipeCreationRateLimiter(nil, 2)
	reset := time.Now()
	assert.False(t, limiter.quota(2, reset).Exceeded())
	assert.True(t, limiter.quota(3, reset).Exceeded())
	assert.Zero(t, limiter.quota(5, reset).Remaining)
	assert.Equal(t, time.Hour, limiter.Policy().Window)
}

func TestRateLimitMiddlewareRequiresUser(t *testing.T) {
	limiter := NewRecipeCreationRateLimiter(nil, 1)
	r := newTestEngine(limiter.RateLimitMiddleware())
	r.POST("/api/recipes", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/recipes", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
