package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"tour-curation-service/internal/adapters/repositories"
	"tour-curation-service/internal/config"
	"tour-curation-service/internal/platform/db"
)

// dbtool initializes and seeds the Postgres place catalog for shared
// deployments (local runs use the self-seeding SQLite path instead).
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/places.json")
	initAndSeed(context.Background(), db, seedPath)
}

func initAndSeed(ctx context.Context, db *sql.DB, seedPath string) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchemaPG(ctx, db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSONPG(ctx, db, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}
