package cache

import (
	"context"
	"sync"

	"github.com/pageza/cookbook/backend/internal/models"
)

// MemoryCache is an in-process RecipeCache. Concurrent puts on the same key are last-writer-wins.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[uint]*models.Recipe
}

// NewMemoryCache creates an empty MemoryCache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[uint]*models.Recipe)}
}

func (c *MemoryCache) Get(_ context.Context, id uint) (*models.Recipe, bool, error) {
	c.mu.RLock()
	recipe, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	return recipe.Clone(), true, nil
}

func (c *MemoryCache) Put(_ context.Context, id uint, recipe *models.Recipe) error {
	c.mu.Lock()
	c.entries[id] = recipe.Clone()
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Evict(_ context.Context, id uint) error {
	c.mu.Lock()
	delete(c.entries, id)
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) EvictAll(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[uint]*models.Recipe)
	c.mu.Unlock()
	return nil
}

// Len returns the number of cached recipes
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
