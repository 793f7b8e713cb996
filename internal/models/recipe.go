package models

import (
	"fmt"
	"time"
)

// CreatedAtLayout is the display format recipes are stamped with (dd-MM-yyyy HH:mm).
const CreatedAtLayout = "02-01-2006 15:04"

// Category classifies a recipe
type Category string

const (
	CategoryStarter    Category = "STARTER"
	CategoryMainCourse Category = "MAIN_COURSE"
	CategoryDessert    Category = "DESSERT"
)

// Categories lists every valid category in ordinal order
var Categories = []Category{CategoryStarter, CategoryMainCourse, CategoryDessert}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a category name into a Category
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if !c.Valid() {
		return "", fmt.Errorf("unknown recipe category %q", name)
	}
	return c, nil
}

// CategoryFromToken maps the ordinal tokens used by the category lookup.
// "1" is MAIN_COURSE, "2" is DESSERT and anything else falls back to STARTER.
func CategoryFromToken(token string) Category {
	switch token {
	case "1":
		return CategoryMainCourse
	case "2":
		return CategoryDessert
	default:
		return CategoryStarter
	}
}

// Ingredient is a named quantity that can be shared by many recipes
type Ingredient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Quantity string `gorm:"size:255" json:"quantity"`
}

// Recipe is the catalog entity. CreatedAt is a display string, not a gorm managed timestamp.
type Recipe struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"size:255;not null" json:"name"`
	Category     Category     `gorm:"size:20;not null;index" json:"category"`
	Ingredients  []Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients"`
	Instructions string       `gorm:"type:text;not null" json:"instructions"`
	Suggestions  string       `gorm:"type:text" json:"suggestions"`
	Servings     int          `gorm:"not null;default:0" json:"servings"`
	Vegetarian   bool         `gorm:"not null;default:false" json:"vegetarian"`
	CreatedAt    string       `gorm:"column:created_at;size:16;index;autoCreateTime:false" json:"created_at"`
}

// StampCreatedAt formats t in the recipe display layout
func StampCreatedAt(t time.Time) string {
	return t.Format(CreatedAtLayout)
}

// Clone returns a deep copy of the recipe, including its ingredient slice
func (r *Recipe) Clone() *Recipe {
	if r == nil {
		return nil
	}
	out := *r
	if r.Ingredients != nil {
		out.Ingredients = make([]Ingredient, len(r.Ingredients))
		copy(out.Ingredients, r.Ingredients)
	}
	return &out
}
