package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/database"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/types"
)

func main() {
	count := flag.Int("count", 3, "Number of test users to create")
	password := flag.String("password", "testpassword123", "Password shared by the test users")
	admin := flag.Bool("admin", false, "Also create an admin account")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	auth := service.NewAuthService(db, cfg.JWTSecret, cfg.JWTExpiration)
	ctx := context.Background()

	var requests []*types.SignUpRequest
	for i := 1; i <= *count; i++ {
		requests = append(requests, &types.SignUpRequest{
			Name:     fmt.Sprintf("Test User %d", i),
			Username: fmt.Sprintf("testuser%d", i),
			Email:    fmt.Sprintf("testuser%d@example.com", i),
			Password: *password,
			Role:     []string{"user"},
		})
	}
	if *admin {
		requests = append(requests, &types.SignUpRequest{
			Name:     "Test Admin",
			Username: "testadmin",
			Email:    "testadmin@example.com",
			Password: *password,
			Role:     []string{"admin", "user"},
		})
	}

	for _, req := range requests {
		user, err := auth.Register(ctx, req)
		if errors.Is(err, service.ErrUserExists) {
			log.Printf("Skipping %s: %v", req.Username, err)
			continue
		}
		if err != nil {
			log.Fatalf("Failed to create user %s: %v", req.Username, err)
		}
		log.Printf("Created user %s with roles %v", user.Username, user.Roles)
	}
}
