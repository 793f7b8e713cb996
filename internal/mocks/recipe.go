package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/cookbook/backend/internal/models"
)

// MockRecipeStore is a mock implementation of the RecipeStore interface
type MockRecipeStore struct {
	mock.Mock
}

func (m *MockRecipeStore) Save(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeStore) FindByID(ctx context.Context, id uint) (*models.Recipe, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Recipe), args.Bool(1), args.Error(2)
}

func (m *MockRecipeStore) FindAll(ctx context.Context) ([]*models.Recipe, error) {
	args := m.Called(ctx)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeStore) FindByCategory(ctx context.Context, category models.Category) ([]*models.Recipe, error) {
	args := m.Called(ctx, category)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeStore) FindByNameContaining(ctx context.Context, substring string) ([]*models.Recipe, error) {
	args := m.Called(ctx, substring)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeStore) FindByCreatedAt(ctx context.Context, createdAt string) ([]*models.Recipe, error) {
	args := m.Called(ctx, createdAt)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeStore) DeleteByID(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeStore) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockIngredientStore is a mock implementation of the IngredientStore interface
type MockIngredientStore struct {
	mock.Mock
}

func (m *MockIngredientStore) UpsertAll(ctx context.Context, ingredients []models.Ingredient) ([]models.Ingredient, error) {
	args := m.Called(ctx, ingredients)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

// MockRecipeCache is a mock implementation of the RecipeCache interface
type MockRecipeCache struct {
	mock.Mock
}

func (m *MockRecipeCache) Get(ctx context.Context, id uint) (*models.Recipe, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Recipe), args.Bool(1), args.Error(2)
}

func (m *MockRecipeCache) Put(ctx context.Context, id uint, recipe *models.Recipe) error {
	return m.Called(ctx, id, recipe).Error(0)
}

func (m *MockRecipeCache) Evict(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeCache) EvictAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockRecipeService is a mock implementation of the IRecipeService interface
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	args := m.Called(ctx)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) ListRecipesByCategory(ctx context.Context, token string) ([]*models.Recipe, error) {
	args := m.Called(ctx, token)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) SearchRecipesByName(ctx context.Context, substring string) ([]*models.Recipe, error) {
	args := m.Called(ctx, substring)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) ListRecipesByCreationDate(ctx context.Context, token string) ([]*models.Recipe, error) {
	args := m.Called(ctx, token)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, id uint) (*models.Recipe, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Recipe), args.Bool(1), args.Error(2)
}

func (m *MockRecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id uint, recipe *models.Recipe) (*models.Recipe, bool, error) {
	args := m.Called(ctx, id, recipe)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Recipe), args.Bool(1), args.Error(2)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipeService) DeleteAllRecipes(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func recipes(v interface{}) []*models.Recipe {
	if v == nil {
		return nil
	}
	return v.([]*models.Recipe)
}
