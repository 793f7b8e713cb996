package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pageza/cookbook/backend/internal/cache"
	"github.com/pageza/cookbook/backend/internal/metrics"
	"github.com/pageza/cookbook/backend/internal/models"
)

// RecipeService handles recipe operations. Single-recipe reads go through the
// cache; list queries always read the store.
type RecipeService struct {
	recipes     RecipeStore
	ingredients IngredientStore
	cache       cache.RecipeCache
	metrics     *metrics.Metrics
	logger      *log.Logger
	now         func() time.Time
}

// RecipeServiceOption configures optional collaborators of a RecipeService
type RecipeServiceOption func(*RecipeService)

// WithClock overrides the clock used to stamp creation dates
func WithClock(now func() time.Time) RecipeServiceOption {
	return func(s *RecipeService) { s.now = now }
}

// WithLogger sets the logger used for cache failures
func WithLogger(logger *log.Logger) RecipeServiceOption {
	return func(s *RecipeService) { s.logger = logger }
}

// WithMetrics records successful writes
func WithMetrics(m *metrics.Metrics) RecipeServiceOption {
	return func(s *RecipeService) { s.metrics = m }
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(recipes RecipeStore, ingredients IngredientStore, recipeCache cache.RecipeCache, opts ...RecipeServiceOption) *RecipeService {
	s := &RecipeService{
		recipes:     recipes,
		ingredients: ingredients,
		cache:       recipeCache,
		logger:      log.New(os.Stdout, "[recipes] ", log.LstdFlags),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListRecipes returns every recipe in store order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	return s.recipes.FindAll(ctx)
}

// ListRecipesByCategory maps token through CategoryFromToken and lists the matches
func (s *RecipeService) ListRecipesByCategory(ctx context.Context, token string) ([]*models.Recipe, error) {
	return s.recipes.FindByCategory(ctx, models.CategoryFromToken(token))
}

// SearchRecipesByName lists recipes whose name contains substring, ignoring case
func (s *RecipeService) SearchRecipesByName(ctx context.Context, substring string) ([]*models.Recipe, error) {
	return s.recipes.FindByNameContaining(ctx, substring)
}

// ListRecipesByCreationDate lists recipes created at exactly token, after
// converting UI formatted tokens to the stored format
func (s *RecipeService) ListRecipesByCreationDate(ctx context.Context, token string) ([]*models.Recipe, error) {
	return s.recipes.FindByCreatedAt(ctx, NormalizeCreationDate(token))
}

// GetRecipe retrieves a recipe by ID, reading through the cache.
// ok is false when no such recipe exists.
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, bool, error) {
	cached, hit, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Printf("cache lookup for recipe %d failed, reading store: %v", id, err)
	} else if hit {
		return cached, true, nil
	}

	recipe, ok, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find recipe %d: %w", id, err)
	}
	if !ok {
		return nil, false, nil
	}

	if err := s.writeThrough(ctx, id, recipe); err != nil {
		return nil, false, err
	}
	return recipe, true, nil
}

// CreateRecipe upserts the recipe's ingredients, stamps its creation date and
// saves it. The cache entry is keyed by the store-assigned ID.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	toSave := recipe.Clone()

	if len(toSave.Ingredients) > 0 {
		saved, err := s.ingredients.UpsertAll(ctx, toSave.Ingredients)
		if err != nil {
			return nil, fmt.Errorf("failed to save ingredients: %w", err)
		}
		toSave.Ingredients = saved
	}

	toSave.ID = 0
	toSave.CreatedAt = models.StampCreatedAt(s.now())

	persisted, err := s.recipes.Save(ctx, toSave)
	if err != nil {
		return nil, fmt.Errorf("failed to save recipe: %w", err)
	}

	if err := s.writeThrough(ctx, persisted.ID, persisted); err != nil {
		return nil, err
	}
	s.metrics.IncrementRecipeOperation("create")
	return persisted, nil
}

// UpdateRecipe copies the incoming fields onto the stored recipe and saves it.
// ok is false, and nothing is written, when id does not exist.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, recipe *models.Recipe) (*models.Recipe, bool, error) {
	stored, ok, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to find recipe %d: %w", id, err)
	}
	if !ok {
		return nil, false, nil
	}

	updated := ApplyRecipeUpdate(*stored, *recipe)

	if len(updated.Ingredients) > 0 {
		saved, err := s.ingredients.UpsertAll(ctx, updated.Ingredients)
		if err != nil {
			return nil, false, fmt.Errorf("failed to save ingredients: %w", err)
		}
		updated.Ingredients = saved
	}

	persisted, err := s.recipes.Save(ctx, &updated)
	if err != nil {
		return nil, false, fmt.Errorf("failed to save recipe %d: %w", id, err)
	}

	if err := s.writeThrough(ctx, id, persisted); err != nil {
		return nil, false, err
	}
	s.metrics.IncrementRecipeOperation("update")
	return persisted, true, nil
}

// DeleteRecipe removes the recipe and its cache entry. It returns false when
// the recipe does not exist.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) (bool, error) {
	_, ok, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to find recipe %d: %w", id, err)
	}
	if !ok {
		return false, nil
	}

	if err := s.recipes.DeleteByID(ctx, id); err != nil {
		return false, fmt.Errorf("failed to delete recipe %d: %w", id, err)
	}
	if err := s.cache.Evict(ctx, id); err != nil {
		return false, fmt.Errorf("failed to evict recipe %d from cache: %w", id, err)
	}
	s.metrics.IncrementRecipeOperation("delete")
	return true, nil
}

// DeleteAllRecipes removes every recipe and empties the cache
func (s *RecipeService) DeleteAllRecipes(ctx context.Context) error {
	if err := s.recipes.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete recipes: %w", err)
	}
	if err := s.cache.EvictAll(ctx); err != nil {
		return fmt.Errorf("failed to clear recipe cache: %w", err)
	}
	s.metrics.IncrementRecipeOperation("delete_all")
	return nil
}

// writeThrough puts recipe into the cache. A failed put evicts the key so a
// stale entry cannot outlive the store write; only a failed evict is returned.
func (s *RecipeService) writeThrough(ctx context.Context, id uint, recipe *models.Recipe) error {
	err := s.cache.Put(ctx, id, recipe)
	if err == nil {
		return nil
	}
	s.logger.Printf("cache put for recipe %d failed, evicting: %v", id, err)
	if err := s.cache.Evict(ctx, id); err != nil {
		return fmt.Errorf("failed to evict recipe %d after cache put failure: %w", id, err)
	}
	return nil
}

// ApplyRecipeUpdate returns stored with every mutable field replaced by the
// incoming value. The ID stays; CreatedAt is copied like the other fields and
// the ingredient list is replaced as a whole.
func ApplyRecipeUpdate(stored, incoming models.Recipe) models.Recipe {
	out := stored
	out.Name = incoming.Name
	out.Category = incoming.Category
	out.Ingredients = make([]models.Ingredient, len(incoming.Ingredients))
	copy(out.Ingredients, incoming.Ingredients)
	out.Instructions = incoming.Instructions
	out.Suggestions = incoming.Suggestions
	out.Servings = incoming.Servings
	out.CreatedAt = incoming.CreatedAt
	out.Vegetarian = incoming.Vegetarian
	return out
}
