package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tour-curation-service/internal/domain"
	"tour-curation-service/internal/platform/obs"
)

// SQLite-backed implementation of the PlaceRepository port.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

// Return all catalog places stored in the database.
func (s *SqlitePlaceRepository) ListPlaces(ctx context.Context) (places []domain.Place, err error) {
	defer obs.Time(ctx, "repositories.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
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

	places = make([]domain.Place, 0, 64)
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

func scanPlace(rows *sql.Rows) (domain.Place, error) {
	var p domain.Place
	var role, timesOfDay string
	err := rows.Scan(
		&p.ID, &p.Name, &p.Category, &p.Description,
		&p.Coordinates.Lat, &p.Coordinates.Lon,
		&role, &p.DurationMinutes, &p.GenerationWeight, &timesOfDay,
	)
	if err != nil {
		return domain.Place{}, fmt.Errorf("scan row: %w", err)
	}

	p.Role = domain.SpotRole(role)
	p.TimesOfDay = splitTimesOfDay(timesOfDay)
	return p, nil
}
