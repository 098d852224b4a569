//cmd/seeder/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/unclebandit/crm-viewer/internal/config"
)

// seedFiles run in order; each is idempotent.
var seedFiles = []string{
	"schema.sql",
	"customers.sql",
	"interactions.sql",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg, err := config.LoadSeeder()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	log.Println("Seeding", cfg.DB.Target())
	if err := seed(db, cfg.SeedDir); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Database seeding completed successfully!")
}

func seed(db *sql.DB, dir string) error {
	for _, file := range seedFiles {
		path := filepath.Join(dir, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute %s: %w", path, err)
		}
		fmt.Printf("Seeded: %s\n", path)
	}
	return nil
}
