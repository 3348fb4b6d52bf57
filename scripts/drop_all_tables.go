package main

import (
	"fmt"
	"log"
	"os"

	"scholarportal/internal/migrations"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev" // Default to dev
	}
	if env == "prod" {
		log.Fatal("Refusing to drop tables in the prod environment")
	}

	db, err := migrations.OpenDB(dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }() // Error ignored: script exiting

	// Reverting every migration drops the portal tables and leaves the
	// schema_migrations bookkeeping at "no version"
	if err := migrations.MigrateDown(db); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}

	fmt.Printf("All tables dropped successfully (environment: %s)\n", env)
}
