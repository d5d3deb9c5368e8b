package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"tour-curation-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		place_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		spot_role TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		generation_weight REAL NOT NULL DEFAULT 1,
		times_of_day TEXT NOT NULL
	);
	`

	if _, err := db.Exec(createPlacesQuery); err != nil {
		return fmt.Errorf("init schema: create places table: %w", err)
	}

	return nil
}

// PlaceSeed mirrors one entry of the places seed file.
type PlaceSeed struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	Description      string   `json:"description"`
	Lat              float64  `json:"lat"`
	Lon              float64  `json:"lon"`
	SpotRole         string   `json:"spot_role"`
	DurationMinutes  int      `json:"duration_minutes"`
	GenerationWeight float64  `json:"generation_weight"`
	TimesOfDay       []string `json:"time_of_day"`
}

// loadPlaceSeeds reads and validates the seed file shared by the SQLite and
// Postgres seeding paths.
func loadPlaceSeeds(jsonPath string) ([]PlaceSeed, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return nil, fmt.Errorf("item at index %d: id cannot be empty", i)
		}
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("item %q: name cannot be empty", item.ID)
		}
		if item.DurationMinutes <= 0 {
			return nil, fmt.Errorf("item %q: duration_minutes must be positive", item.ID)
		}
		if len(item.TimesOfDay) == 0 {
			return nil, fmt.Errorf("item %q: time_of_day cannot be empty", item.ID)
		}
	}

	return data, nil
}

// Populate the database with place data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := loadPlaceSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO places (
		place_id,
		name,
		category,
		description,
		lat,
		lon,
		spot_role,
		duration_minutes,
		generation_weight,
		times_of_day
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		_, err := stmt.Exec(
			p.ID, p.Name, p.Category, p.Description,
			p.Lat, p.Lon, p.SpotRole, p.DurationMinutes,
			p.GenerationWeight, joinTimesOfDay(p.TimesOfDay),
		)
		if err != nil {
			return fmt.Errorf("seed places: insert place_id=%q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}

// times_of_day is stored as a comma-separated column in both dialects.
func joinTimesOfDay(times []string) string {
	return strings.Join(times, ",")
}

func splitTimesOfDay(s string) []domain.TimeOfDay {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.TimeOfDay, 0, len(parts))
	for _, p := range parts {
		out = append(out, domain.TimeOfDay(strings.TrimSpace(p)))
	}
	return out
}
