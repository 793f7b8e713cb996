package types

import "github.com/pageza/cookbook/backend/internal/models"

// IngredientRequest is one entry of a recipe's ingredientsList. A non-zero
// ID updates the existing ingredient instead of creating a new one.
type IngredientRequest struct {
	ID       uint   `json:"ingredient_id"`
	Name     string `json:"ingredientName" binding:"required,max=255"`
	Quantity string `json:"quantity" binding:"max=255"`
}

// RecipeRequest represents the request body for creating or updating a recipe
type RecipeRequest struct {
	Name         string              `json:"recipeName" binding:"required,max=255"`
	Category     string              `json:"recipeCategory" binding:"required,oneof=STARTER MAIN_COURSE DESSERT"`
	Ingredients  []IngredientRequest `json:"ingredientsList" binding:"dive"`
	Instructions string              `json:"instructions" binding:"required"`
	Suggestions  string              `json:"suggestions"`
	Servings     int                 `json:"servings" binding:"gte=0"`
	Vegetarian   bool                `json:"vegetarian"`
	// CreatedAt is ignored on create and copied onto the stored recipe on update
	CreatedAt string `json:"createdAt"`
}

// ToModel converts the request into a recipe entity without an ID
func (r *RecipeRequest) ToModel() *models.Recipe {
	ingredients := make([]models.Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = models.Ingredient{ID: ing.ID, Name: ing.Name, Quantity: ing.Quantity}
	}
	return &models.Recipe{
		Name:         r.Name,
		Category:     models.Category(r.Category),
		Ingredients:  ingredients,
		Instructions: r.Instructions,
		Suggestions:  r.Suggestions,
		Servings:     r.Servings,
		Vegetarian:   r.Vegetarian,
		CreatedAt:    r.CreatedAt,
	}
}

// SignUpRequest represents the request body for user registration.
// Role accepts "admin" and "user"; an empty list grants USER.
type SignUpRequest struct {
	Name     string   `json:"name" binding:"required,max=100"`
	Username string   `json:"username" binding:"required,min=3,max=20"`
	Email    string   `json:"email" binding:"required,email,max=50"`
	Password string   `json:"password" binding:"required,min=6,max=40"`
	Role     []string `json:"role"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
