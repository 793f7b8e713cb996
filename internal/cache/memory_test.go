package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookbook/backend/internal/models"
)

func testRecipe(id uint, name string) *models.Recipe {
	return &models.Recipe{
		ID:           id,
		Name:         name,
		Category:     models.CategoryMainCourse,
		Instructions: "Cook in oven",
		Servings:     5,
		Vegetarian:   true,
		CreatedAt:    "05-06-2022 12:12",
		Ingredients:  []models.Ingredient{{ID: 1, Name: "cheese", Quantity: "200g"}},
	}
}

func TestMemoryCacheGetMiss(t *testing.T) {
	c := NewMemoryCache()
	got, ok, err := c.Get(context.Background(), 42)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMemoryCachePutOverwrites(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	require.NoError(t, c.Put(ctx, 1, testRecipe(1, "Pizza")))
	require.NoError(t, c.Put(ctx, 1, testRecipe(1, "Calzone")))

	got, ok, err := c.Get(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Calzone", got.Name)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCacheCopiesValues(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	r := testRecipe(1, "Pizza")
	require.NoError(t, c.Put(ctx, 1, r))

	r.Name = "changed after put"
	r.Ingredients[0].Name = "changed after put"

	got, _, _ := c.Get(ctx, 1)
	assert.Equal(t, "Pizza", got.Name)
	assert.Equal(t, "cheese", got.Ingredients[0].Name)

	got.Name = "changed after get"
	again, _, _ := c.Get(ctx, 1)
	assert.Equal(t, "Pizza", again.Name)
}

func TestMemoryCacheEvict(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	require.NoError(t, c.Put(ctx, 1, testRecipe(1, "Pizza")))
	require.NoError(t, c.Put(ctx, 2, testRecipe(2, "Pasta")))

	require.NoError(t, c.Evict(ctx, 1))
	require.NoError(t, c.Evict(ctx, 99))

	_, ok, _ := c.Get(ctx, 1)
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, 2)
	assert.True(t, ok)
}

func TestMemoryCacheEvictAll(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	for i := uint(1); i <= 5; i++ {
		require.NoError(t, c.Put(ctx, i, testRecipe(i, "r")))
	}

	require.NoError(t, c.EvictAll(ctx))
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := uint(i % 5)
			_ = c.Put(ctx, id, testRecipe(id, "r"))
			_, _, _ = c.Get(ctx, id)
			if i%10 == 0 {
				_ = c.Evict(ctx, id)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 5)
}
