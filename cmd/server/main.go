package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"tour-curation-service/internal/adapters/cache"
	"tour-curation-service/internal/adapters/nominatim"
	"tour-curation-service/internal/adapters/overpass"
	"tour-curation-service/internal/adapters/repositories"
	"tour-curation-service/internal/api"
	"tour-curation-service/internal/config"
	"tour-curation-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Overpass, Nominatim) behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/places.json")
	toursPath := config.Get("TOURS_PATH", "data/seeds/tours.json")
	port := config.Get("PORT", "8080")
	overpassURL := config.Get("OVERPASS_URL", overpass.DefaultBaseURL)
	nominatimURL := config.Get("NOMINATIM_URL", nominatim.DefaultBaseURL)

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed the catalog on startup for local runs.
	if err := initAndSeed(db, seedPath); err != nil {
		log.Fatal(err)
	}

	curated, err := repositories.LoadCuratedTours(toursPath)
	if err != nil {
		log.Fatal(err)
	}

	// Overpass results are cached in Redis when configured, in-process otherwise.
	poiCache := newPOICache(os.Getenv("REDIS_URL"))
	source := overpass.New(overpassURL, poiCache)
	geocoder := nominatim.New(nominatimURL)
	repo := repositories.NewSqlitePlaceRepository(db)

	router := api.NewRouter(api.Deps{
		Repo:     repo,
		Source:   source,
		Geocoder: geocoder,
		Curated:  curated,
	})

	// Timeouts are tuned for cold-cache discovery (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func newPOICache(redisURL string) ports.POICache {
	if strings.TrimSpace(redisURL) == "" {
		return cache.NewMemoryPOICache()
	}

	c, err := cache.NewRedisPOICache(redisURL)
	if err != nil {
		log.Printf("redis cache unavailable, falling back to memory: %v", err)
		return cache.NewMemoryPOICache()
	}

	log.Println("Using Redis POI cache")
	return c
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
