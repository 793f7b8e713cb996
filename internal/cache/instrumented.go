package cache

import (
	"context"

	"github.com/pageza/cookbook/backend/internal/metrics"
	"github.com/pageza/cookbook/backend/internal/models"
)

// InstrumentedCache records hits, misses, puts and evictions of the wrapped cache
type InstrumentedCache struct {
	next    RecipeCache
	metrics *metrics.Metrics
}

// NewInstrumentedCache wraps next. A nil m returns next unchanged.
func NewInstrumentedCache(next RecipeCache, m *metrics.Metrics) RecipeCache {
	if m == nil {
		return next
	}
	return &InstrumentedCache{next: next, metrics: m}
}

func (c *InstrumentedCache) Get(ctx context.Context, id uint) (*models.Recipe, bool, error) {
	recipe, ok, err := c.next.Get(ctx, id)
	switch {
	case err != nil:
		c.metrics.CacheErrors.WithLabelValues("get").Inc()
	case ok:
		c.metrics.CacheHits.Inc()
	default:
		c.metrics.CacheMisses.Inc()
	}
	return recipe, ok, err
}

func (c *InstrumentedCache) Put(ctx context.Context, id uint, recipe *models.Recipe) error {
	if err := c.next.Put(ctx, id, recipe); err != nil {
		c.metrics.CacheErrors.WithLabelValues("put").Inc()
		return err
	}
	c.metrics.CachePuts.Inc()
	return nil
}

func (c *InstrumentedCache) Evict(ctx context.Context, id uint) error {
	if err := c.next.Evict(ctx, id); err != nil {
		c.metrics.CacheErrors.WithLabelValues("evict").Inc()
		return err
	}
	c.metrics.CacheEvictions.WithLabelValues("key").Inc()
	return nil
}

func (c *InstrumentedCache) EvictAll(ctx context.Context) error {
	if err := c.next.EvictAll(ctx); err != nil {
		c.metrics.CacheErrors.WithLabelValues("evict_all").Inc()
		return err
	}
	c.metrics.CacheEvictions.WithLabelValues("all").Inc()
	return nil
}
