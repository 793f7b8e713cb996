package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/pageza/cookbook/backend/config"
	"github.com/pageza/cookbook/backend/internal/database"
)

func main() {
	// Parse command line flags
	wait := flag.Duration("wait", 60*time.Second, "How long to wait for Postgres to accept connections")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.DBDriver == config.DriverPostgres {
		ctx, cancel := context.WithTimeout(context.Background(), *wait)
		err := database.WaitForPostgres(ctx, cfg, 2*time.Second)
		cancel()
		if err != nil {
			log.Fatalf("Failed to reach database: %v", err)
		}
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations applied successfully")
}
