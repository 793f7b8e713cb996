package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/app"
	"github.com/pageza/cookbook/backend/internal/seed"
)

func main() {
	force := flag.Bool("force", false, "Delete existing recipes before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer application.Close()

	res, err := seed.NewSeeder(application.Recipes, application.Auth).Run(ctx, *force)
	if err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Printf("Seeding complete: demo user created=%t, recipes created=%d", res.UserCreated, res.RecipesCreated)
}
