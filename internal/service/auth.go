package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/pageza/cookbook/backend/internal/models"
	"github.com/pageza/cookbook/backend/internal/types"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

type AuthService struct {
	db         *gorm.DB
	jwtSecret  string
	expiration time.Duration
	now        func() time.Time
}

func NewAuthService(db *gorm.DB, jwtSecret string, expiration time.Duration) *AuthService {
	return &AuthService{
		db:         db,
		jwtSecret:  jwtSecret,
		expiration: expiration,
		now:        time.Now,
	}
}

// Register stores a new user with a bcrypt password hash. Requested roles
// "admin" and "user" map to ADMIN and USER; no roles means USER.
func (s *AuthService) Register(ctx context.Context, req *types.SignUpRequest) (*models.User, error) {
	db := s.db.WithContext(ctx)

	usernameTaken, emailTaken, err := models.UsernameOrEmailTaken(db, req.Username, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if usernameTaken {
		return nil, fmt.Errorf("%w: username is already taken", ErrUserExists)
	}
	if emailTaken {
		return nil, fmt.Errorf("%w: email is already in use", ErrUserExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Roles:        resolveRoles(req.Role),
	}
	if err := models.CreateUser(db, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func resolveRoles(requested []string) []string {
	var roles []string
	add := func(role string) {
		for _, r := range roles {
			if r == role {
				return
			}
		}
		roles = append(roles, role)
	}
	for _, r := range requested {
		if strings.EqualFold(r, "admin") {
			add(models.RoleAdmin)
		} else {
			add(models.RoleUser)
		}
	}
	if len(roles) == 0 {
		add(models.RoleUser)
	}
	return roles
}

// Login checks the credentials and returns the user with a signed token
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := models.GetUserByUsername(s.db.WithContext(ctx), username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	// Compare password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GenerateToken signs an HS256 token carrying the user's ID, name and roles
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	now := s.now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
		UserID:   user.ID,
		Username: user.Username,
		Roles:    user.Roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
