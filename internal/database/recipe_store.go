package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/cookbook/backend/internal/models"
)

// RecipeStore persists recipes and their ingredient links with gorm.
// Ingredient rows themselves are written by IngredientStore.
type RecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore creates a new RecipeStore
func NewRecipeStore(db *gorm.DB) *RecipeStore {
	return &RecipeStore{db: db}
}

func preloadIngredients(db *gorm.DB) *gorm.DB {
	return db.Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
		return db.Order("ingredients.id")
	})
}

// Save inserts or updates the recipe row and replaces its ingredient links
func (s *RecipeStore) Save(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	toSave := recipe.Clone()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(toSave).Error; err != nil {
			return err
		}

		links := tx.Model(toSave).Association("Ingredients")
		if len(toSave.Ingredients) == 0 {
			return links.Clear()
		}
		return links.Replace(toSave.Ingredients)
	})
	if err != nil {
		return nil, err
	}
	if toSave.Ingredients == nil {
		toSave.Ingredients = []models.Ingredient{}
	}
	return toSave, nil
}

// FindByID reports ok == false when the recipe does not exist
func (s *RecipeStore) FindByID(ctx context.Context, id uint) (*models.Recipe, bool, error) {
	var recipe models.Recipe
	err := preloadIngredients(s.db.WithContext(ctx)).First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &recipe, true, nil
}

func (s *RecipeStore) FindAll(ctx context.Context) ([]*models.Recipe, error) {
	return s.find(ctx, s.db.WithContext(ctx))
}

func (s *RecipeStore) FindByCategory(ctx context.Context, category models.Category) ([]*models.Recipe, error) {
	return s.find(ctx, s.db.WithContext(ctx).Where("category = ?", category))
}

// FindByNameContaining matches substring anywhere in the name, ignoring case.
// LIKE wildcards in substring are matched literally.
func (s *RecipeStore) FindByNameContaining(ctx context.Context, substring string) ([]*models.Recipe, error) {
	like := "%" + escapeLike(strings.ToLower(substring)) + "%"
	return s.find(ctx, s.db.WithContext(ctx).Where("LOWER(name) LIKE ? ESCAPE '\\'", like))
}

func (s *RecipeStore) FindByCreatedAt(ctx context.Context, createdAt string) ([]*models.Recipe, error) {
	return s.find(ctx, s.db.WithContext(ctx).Where("created_at = ?", createdAt))
}

// DeleteByID removes the recipe and its ingredient links. Ingredients stay.
func (s *RecipeStore) DeleteByID(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Recipe{ID: id}).Association("Ingredients").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
}

// DeleteAll removes every recipe and every ingredient link
func (s *RecipeStore) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_ingredients").Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Recipe{}).Error
	})
}

func (s *RecipeStore) find(_ context.Context, query *gorm.DB) ([]*models.Recipe, error) {
	var recipes []models.Recipe
	if err := preloadIngredients(query).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}

	// Convert to []*models.Recipe
	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
