package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/internal/models"
)

// RunMigrations brings the schema up to date for every model the service owns
func RunMigrations(db *gorm.DB) error {
	log.Printf("Running auto-migration on %s", db.Dialector.Name())
	if err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Recipe{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
