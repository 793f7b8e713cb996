// Package seed loads the demo catalog and demo account into an empty database.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/pageza/cookbook/backend/internal/models"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/types"
)

// Demo account credentials
const (
	DemoUsername = "username"
	DemoPassword = "password"
	DemoEmail    = "test1@test.test"
)

type ingredient struct{ name, quantity string }

type demoRecipe struct {
	name         string
	category     models.Category
	instructions string
	suggestions  string
	ingredients  []ingredient
}

var demoRecipes = []demoRecipe{
	{"Pizza", models.CategoryMainCourse, "Cook in oven", "Prepare the dough, chop the vegetables", []ingredient{
		{"wheat flour", "800 g"}, {"tomato sauce", "200 g"}, {"cheese", "1 level"}, {"vegetables", "2x7 g"}, {"chilli flakes", "1 tablespoon"},
	}},
	{"Noodles", models.CategoryMainCourse, "Cook in pan", "Cook with raw noodles", []ingredient{
		{"soy sauce", "1 teaspoon"}, {"salt", "1 bunch"}, {"olive oil", ""}, {"oregano", "1x400 g"},
	}},
	{"Pasta", models.CategoryMainCourse, "cook in pan", "Cook with raw pasta", []ingredient{
		{"soy sauce", "2 teaspoons"}, {"cheese", "50 g"}, {"salt", "450 g"}, {"vegetables", "2 tablespoons"},
	}},
	{"Fries", models.CategoryStarter, "Fry with oil", "Use hard potatoes", []ingredient{
		{"potato", "1 small"}, {"cooking oil", "6 cloves"}, {"salt", "3 sprigs"}, {"chilli flakes", "1 teaspoon"}, {"ketchup", "1 small"}, {"mayonnaise", "125 g"},
	}},
	{"Garlic bread", models.CategoryStarter, "Cook with bread", "Use lot of garlic with bread", []ingredient{
		{"Bread", "1 large"}, {"Garlic", "6 cm piece"}, {"chilli flakes", "6 large sticks"}, {"oregano", "2"},
	}},
	{"Chips", models.CategoryStarter, "Fry with oil", "Chop the potatoes", []ingredient{
		{"potato", "750 g"}, {"chilli powder", "1 spoon"}, {"ketchup", "2"}, {"salt", "120 g"},
	}},
	{"Ice cream", models.CategoryDessert, "Blend it", "Use vanilla flavoring", []ingredient{
		{"ice cubes", "12"}, {"milk", "25 g"}, {"yogurt", "120 g"}, {"sugar", "200 g"}, {"chocolate", "25 g"},
	}},
	{"Smoothie", models.CategoryDessert, "Crush it", "Crush the ice cubes", []ingredient{
		{"fruits", "500 g"}, {"sugar", "500 g"}, {"milk", "1 litre"},
	}},
	{"Milk shake", models.CategoryDessert, "Stir it", "Stir the milk thoroughly", []ingredient{
		{"milk", "50 ml"}, {"sugar", "50 g"}, {"fruits", "4"}, {"saffron", "1 pinch"},
	}},
}

// Recipes returns the demo catalog as unsaved recipes
func Recipes() []*models.Recipe {
	out := make([]*models.Recipe, len(demoRecipes))
	for i, d := range demoRecipes {
		ings := make([]models.Ingredient, len(d.ingredients))
		for j, ing := range d.ingredients {
			ings[j] = models.Ingredient{Name: ing.name, Quantity: ing.quantity}
		}
		out[i] = &models.Recipe{
			Name:         d.name,
			Category:     d.category,
			Ingredients:  ings,
			Instructions: d.instructions,
			Suggestions:  d.suggestions,
			Servings:     5,
			Vegetarian:   true,
		}
	}
	return out
}

// Seeder writes demo data through the services so ingredient upserts and the cache behave as in production
type Seeder struct {
	recipes service.IRecipeService
	auth    service.IAuthService
	// Concurrency caps parallel recipe creation
	Concurrency int
}

func NewSeeder(recipes service.IRecipeService, auth service.IAuthService) *Seeder {
	return &Seeder{recipes: recipes, auth: auth, Concurrency: 4}
}

// Result reports what Run did
type Result struct {
	UserCreated    bool
	RecipesCreated int
}

// Run creates the demo account and the demo recipes. Recipes are skipped when
// the catalog is not empty, unless force is set, in which case it is wiped first.
func (s *Seeder) Run(ctx context.Context, force bool) (Result, error) {
	var res Result

	created, err := s.seedUser(ctx)
	if err != nil {
		return res, err
	}
	res.UserCreated = created

	existing, err := s.recipes.ListRecipes(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to list recipes: %w", err)
	}
	if len(existing) > 0 {
		if !force {
			log.Printf("Found %d recipes, skipping recipe seeding", len(existing))
			return res, nil
		}
		log.Printf("Removing %d existing recipes", len(existing))
		if err := s.recipes.DeleteAllRecipes(ctx); err != nil {
			return res, fmt.Errorf("failed to clear recipes: %w", err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)
	for _, recipe := range Recipes() {
		recipe := recipe
		g.Go(func() error {
			if _, err := s.recipes.CreateRecipe(gctx, recipe); err != nil {
				return fmt.Errorf("failed to seed recipe %q: %w", recipe.Name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	res.RecipesCreated = len(demoRecipes)
	log.Printf("Seeded %d recipes", res.RecipesCreated)
	return res, nil
}

func (s *Seeder) seedUser(ctx context.Context) (bool, error) {
	_, err := s.auth.Register(ctx, &types.SignUpRequest{
		Name:     "test",
		Username: DemoUsername,
		Email:    DemoEmail,
		Password: DemoPassword,
		Role:     []string{"user"},
	})
	if errors.Is(err, service.ErrUserExists) {
		log.Printf("Demo user %q already exists", DemoUsername)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to create demo user: %w", err)
	}
	log.Printf("Created demo user %q", DemoUsername)
	return true, nil
}
