package middleware

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitPolicy is a fixed window budget shared by every request under Prefix
type RateLimitPolicy struct {
	Prefix string
	Limit  int
	Window time.Duration
}

// Quota is a user's budget in the current window
type Quota struct {
	Limit     int
	Used      int
	Remaining int
	ResetAt   time.Time
}

// Exceeded reports whether the request that produced q went over the limit
func (q Quota) Exceeded() bool {
	return q.Used > q.Limit
}

// RateLimiter counts requests per user in fixed Redis windows
type RateLimiter struct {
	redis  *redis.Client
	policy RateLimitPolicy
	now    func() time.Time
}

// NewRateLimiter creates a limiter enforcing policy
func NewRateLimiter(client *redis.Client, policy RateLimitPolicy) *RateLimiter {
	return &RateLimiter{redis: client, policy: policy, now: time.Now}
}

// NewRecipeCreationRateLimiter limits recipe creation to limit recipes per user per hour
func NewRecipeCreationRateLimiter(client *redis.Client, limit int) *RateLimiter {
	return NewRateLimiter(client, RateLimitPolicy{
		Prefix: "rate_limit:recipe_creation",
		Limit:  limit,
		Window: time.Hour,
	})
}

// Policy returns the limiter's policy
func (rl *RateLimiter) Policy() RateLimitPolicy {
	return rl.policy
}

// RateLimitMiddleware rejects requests over the caller's budget with 429.
// When Redis cannot be reached the request goes through with an X-RateLimit-Error header.
func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get(ContextUserID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			return
		}

		quota, err := rl.Take(c.Request.Context(), fmt.Sprint(userID))
		if err != nil {
			log.Printf("Rate limit check for user %v failed: %v", userID, err)
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(quota.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(quota.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(quota.ResetAt.Unix(), 10))

		if quota.Exceeded() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("at most %d recipes may be created per %v", quota.Limit, rl.policy.Window),
				"retry_after": int(quota.ResetAt.Sub(rl.now()).Seconds()),
			})
			return
		}
		c.Next()
	}
}

// Take counts one request from userID and returns the resulting quota
func (rl *RateLimiter) Take(ctx context.Context, userID string) (Quota, error) {
	key, resetAt := rl.window(userID)

	var incr *redis.IntCmd
	_, err := rl.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireAt(ctx, key, resetAt)
		return nil
	})
	if err != nil {
		return Quota{}, fmt.Errorf("failed to count request for %s: %w", key, err)
	}
	return rl.quota(int(incr.Val()), resetAt), nil
}

// Peek returns userID's quota without counting a request
func (rl *RateLimiter) Peek(ctx context.Context, userID string) (Quota, error) {
	key, resetAt := rl.window(userID)

	used, err := rl.redis.Get(ctx, key).Int()
	if errors.Is(err, redis.Nil) {
		return rl.quota(0, resetAt), nil
	}
	if err != nil {
		return Quota{}, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return rl.quota(used, resetAt), nil
}

func (rl *RateLimiter) window(userID string) (string, time.Time) {
	start := rl.now().Truncate(rl.policy.Window)
	return fmt.Sprintf("%s:%s:%d", rl.policy.Prefix, userID, start.Unix()), start.Add(rl.policy.Window)
}

func (rl *RateLimiter) quota(used int, resetAt time.Time) Quota {
	return Quota{
		Limit:     rl.policy.Limit,
		Used:      used,
		Remaining: max(rl.policy.Limit-used, 0),
		ResetAt:   resetAt,
	}
}
