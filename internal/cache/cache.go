// Package cache holds the single-recipe cache that sits in front of the recipe store.
//
// Absence is never an error: Get reports a miss with ok == false and Evict of
// a missing key is a no-op. Values are copied on the way in and out.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/cookbook/backend/internal/models"
)

// RecipeCache maps recipe IDs to the most recently written recipe
type RecipeCache interface {
	Get(ctx context.Context, id uint) (*models.Recipe, bool, error)
	Put(ctx context.Context, id uint, recipe *models.Recipe) error
	Evict(ctx context.Context, id uint) error
	EvictAll(ctx context.Context) error
}

// Supported backends for New
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// New builds the cache for backend. client is only used by the redis backend.
func New(backend string, client *redis.Client, ttl time.Duration) (RecipeCache, error) {
	switch backend {
	case BackendMemory, "":
		return NewMemoryCache(), nil
	case BackendRedis:
		if client == nil {
			return nil, fmt.Errorf("redis cache backend requires a redis client")
		}
		return NewRedisCache(client, ttl), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
