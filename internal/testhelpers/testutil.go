package testhelpers

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/internal/models"
)

// TestPassword is the clear-text password of users created by CreateTestUser
const TestPassword = "testpassword123"

// CreateTestUser stores a user holding roles whose password is TestPassword
func CreateTestUser(t *testing.T, db *gorm.DB, roles ...string) *models.User {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	id := uuid.New()
	user := &models.User{
		ID:           id,
		Name:         "Test User",
		Username:     "user-" + id.String()[:8],
		Email:        fmt.Sprintf("testuser+%s@example.com", id.String()),
		PasswordHash: string(hashedPassword),
		Roles:        roles,
	}
	if err := models.CreateUser(db, user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
