package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-curation-service/internal/domain"
)

// SQLPlaceRepository is the Postgres-backed implementation of the
// PlaceRepository port, used by deployments that share one catalog across
// instances.
type SQLPlaceRepository struct{ DB *sql.DB }

func NewSQLPlaceRepository(db *sql.DB) *SQLPlaceRepository {
	return &SQLPlaceRepository{DB: db}
}

// Return all catalog places stored in the database.
func (s *SQLPlaceRepository) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	if s.DB == nil {
		return nil, errors.New("sql place repository: DB is nil")
	}

	query := `
	SELECT
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
	FROM places
	ORDER BY place_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]domain.Place, 0, 64)
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("list places: %w", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}

// Initialize the Postgres schema.
func InitSchemaPG(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS places (
		place_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		spot_role TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		generation_weight DOUBLE PRECISION NOT NULL DEFAULT 1,
		times_of_day TEXT NOT NULL
	);
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init schema: create places table: %w", err)
	}

	return nil
}

// Populate the Postgres catalog from the shared seed file.
func SeedFromJSONPG(ctx context.Context, db *sql.DB, jsonPath string) error {
	rows, err := loadPlaceSeeds(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO places (
		place_id, name, category, description,
		lat, lon, spot_role, duration_minutes,
		generation_weight, times_of_day
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (place_id) DO UPDATE
	SET name = EXCLUDED.name,
		category = EXCLUDED.category,
		description = EXCLUDED.description,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		spot_role = EXCLUDED.spot_role,
		duration_minutes = EXCLUDED.duration_minutes,
		generation_weight = EXCLUDED.generation_weight,
		times_of_day = EXCLUDED.times_of_day;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		_, err := stmt.ExecContext(ctx,
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
