package types

import "github.com/pageza/cookbook/backend/internal/models"

// IngredientResponse is the wire form of an ingredient
type IngredientResponse struct {
	ID       uint   `json:"ingredient_id"`
	Name     string `json:"ingredientName"`
	Quantity string `json:"quantity"`
}

// RecipeResponse is the wire form of a recipe
type RecipeResponse struct {
	ID           uint                 `json:"recipeId"`
	Name         string               `json:"recipeName"`
	Category     string               `json:"recipeCategory"`
	Ingredients  []IngredientResponse `json:"ingredientsList"`
	Instructions string               `json:"instructions"`
	Suggestions  string               `json:"suggestions"`
	Servings     int                  `json:"servings"`
	Vegetarian   bool                 `json:"vegetarian"`
	CreatedAt    string               `json:"createdAt"`
}

// NewRecipeResponse maps a recipe entity to its wire form
func NewRecipeResponse(recipe *models.Recipe) RecipeResponse {
	ingredients := make([]IngredientResponse, len(recipe.Ingredients))
	for i, ing := range recipe.Ingredients {
		ingredients[i] = IngredientResponse{ID: ing.ID, Name: ing.Name, Quantity: ing.Quantity}
	}
	return RecipeResponse{
		ID:           recipe.ID,
		Name:         recipe.Name,
		Category:     string(recipe.Category),
		Ingredients:  ingredients,
		Instructions: recipe.Instructions,
		Suggestions:  recipe.Suggestions,
		Servings:     recipe.Servings,
		Vegetarian:   recipe.Vegetarian,
		CreatedAt:    recipe.CreatedAt,
	}
}

// NewRecipeResponses maps a list of recipes, never returning nil
func NewRecipeResponses(recipes []*models.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipeResponse(r))
	}
	return out
}

// JwtResponse is returned by a successful login
type JwtResponse struct {
	AccessToken string   `json:"accessToken"`
	Type        string   `json:"type"`
	Username    string   `json:"username"`
	Authorities []string `json:"authorities"`
}

// MessageResponse carries a human readable status message
type MessageResponse struct {
	Message string `json:"message"`
}
