package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/internal/models"
)

// IngredientStore persists ingredients with gorm
type IngredientStore struct {
	db *gorm.DB
}

// NewIngredientStore creates a new IngredientStore
func NewIngredientStore(db *gorm.DB) *IngredientStore {
	return &IngredientStore{db: db}
}

// UpsertAll creates ingredients without an ID and saves the rest, all in one
// transaction. The returned slice carries the assigned IDs.
func (s *IngredientStore) UpsertAll(ctx context.Context, ingredients []models.Ingredient) ([]models.Ingredient, error) {
	out := make([]models.Ingredient, len(ingredients))
	copy(out, ingredients)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range out {
			if out[i].ID == 0 {
				if err := tx.Create(&out[i]).Error; err != nil {
					return err
				}
				continue
			}
			if err := tx.Save(&out[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
