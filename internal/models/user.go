package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role names granted to users
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Username     string    `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Roles        []string  `gorm:"serializer:json" json:"roles"`
}

// BeforeCreate assigns an ID when the caller did not
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// HasAnyRole reports whether the user holds at least one of roles
func (u *User) HasAnyRole(roles ...string) bool {
	for _, have := range u.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// CreateUser inserts a new user into the database
func CreateUser(db *gorm.DB, user *User) error {
	return db.Create(user).Error
}

// GetUserByUsername retrieves a user by username. A missing user is reported as (nil, nil).
func GetUserByUsername(db *gorm.DB, username string) (*User, error) {
	var user User
	err := db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UsernameOrEmailTaken reports which of the two identities is already registered
func UsernameOrEmailTaken(db *gorm.DB, username, email string) (usernameTaken, emailTaken bool, err error) {
	var count int64
	if err = db.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, false, err
	}
	usernameTaken = count > 0
	if err = db.Model(&User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, false, err
	}
	emailTaken = count > 0
	return usernameTaken, emailTaken, nil
}
