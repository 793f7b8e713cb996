package service

import (
	"context"

	"github.com/pageza/cookbook/backend/internal/models"
	"github.com/pageza/cookbook/backend/internal/types"
)

// IngredientStore persists ingredient records
type IngredientStore interface {
	// UpsertAll saves every ingredient, assigning IDs to those that lack one
	UpsertAll(ctx context.Context, ingredients []models.Ingredient) ([]models.Ingredient, error)
}

// RecipeStore persists recipe records keyed by ID
type RecipeStore interface {
	Save(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	// FindByID reports a missing recipe with ok == false rather than an error
	FindByID(ctx context.Context, id uint) (recipe *models.Recipe, ok bool, err error)
	FindAll(ctx context.Context) ([]*models.Recipe, error)
	FindByCategory(ctx context.Context, category models.Category) ([]*models.Recipe, error)
	FindByNameContaining(ctx context.Context, substring string) ([]*models.Recipe, error)
	FindByCreatedAt(ctx context.Context, createdAt string) ([]*models.Recipe, error)
	DeleteByID(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]*models.Recipe, error)
	ListRecipesByCategory(ctx context.Context, token string) ([]*models.Recipe, error)
	SearchRecipesByName(ctx context.Context, substring string) ([]*models.Recipe, error)
	ListRecipesByCreationDate(ctx context.Context, token string) ([]*models.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*models.Recipe, bool, error)
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uint, recipe *models.Recipe) (*models.Recipe, bool, error)
	DeleteRecipe(ctx context.Context, id uint) (bool, error)
	DeleteAllRecipes(ctx context.Context) error
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.SignUpRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
}
