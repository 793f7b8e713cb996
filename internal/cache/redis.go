package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pageza/cookbook/backend/internal/models"
)

const (
	// DefaultKeyPrefix namespaces recipe entries in Redis
	DefaultKeyPrefix = "recipes:"

	scanBatchSize = 100
)

// RedisCache stores recipes as JSON documents in Redis
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a RedisCache. A zero ttl keeps entries until they are evicted.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		prefix: DefaultKeyPrefix,
		ttl:    ttl,
	}
}

// WithPrefix returns a copy of the cache that uses prefix for its keys
func (c *RedisCache) WithPrefix(prefix string) *RedisCache {
	out := *c
	out.prefix = prefix
	return &out
}

func (c *RedisCache) key(id uint) string {
	return c.prefix + strconv.FormatUint(uint64(id), 10)
}

func (c *RedisCache) Get(ctx context.Context, id uint) (*models.Recipe, bool, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get recipe %d from Redis: %w", id, err)
	}

	var recipe models.Recipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached recipe %d: %w", id, err)
	}
	return &recipe, true, nil
}

func (c *RedisCache) Put(ctx context.Context, id uint, recipe *models.Recipe) error {
	data, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to encode recipe %d: %w", id, err)
	}
	if err := c.client.Set(ctx, c.key(id), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save recipe %d to Redis: %w", id, err)
	}
	return nil
}

func (c *RedisCache) Evict(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("failed to evict recipe %d from Redis: %w", id, err)
	}
	return nil
}

// EvictAll deletes every key under the cache prefix, scanning in batches
func (c *RedisCache) EvictAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", scanBatchSize).Iterator()
	batch := make([]string, 0, scanBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatchSize {
			if err := c.client.Del(ctx, batch...).Err(); err != nil {
				return fmt.Errorf("failed to evict recipes from Redis: %w", err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan recipe keys: %w", err)
	}
	if len(batch) > 0 {
		if err := c.client.Del(ctx, batch...).Err(); err != nil {
			return fmt.Errorf("failed to evict recipes from Redis: %w", err)
		}
	}
	return nil
}
