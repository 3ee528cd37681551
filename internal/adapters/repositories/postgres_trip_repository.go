package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/platform/obs"
)

// PostgresTripRepository persists planned itineraries for later retrieval.
type PostgresTripRepository struct {
	DB *sql.DB
}

func NewPostgresTripRepository(db *sql.DB) *PostgresTripRepository {
	return &PostgresTripRepository{DB: db}
}

// Store a planned itinerary. Legs are stored as JSON; the summary columns
// carry everything the list endpoint needs without decoding them.
func (r *PostgresTripRepository) SaveTrip(ctx context.Context, it *domain.Itinerary) (_ string, err error) {
	defer obs.Time(ctx, "trips.repo.SaveTrip")(&err)

	if r.DB == nil {
		return "", errors.New("trip repository: db is nil")
	}
	if it == nil || len(it.Locations) == 0 {
		return "", errors.New("save trip: itinerary is empty")
	}

	legs, err := json.Marshal(it.Legs)
	if err != nil {
		return "", fmt.Errorf("save trip: encode legs: %w", err)
	}

	id := uuid.NewString()
	// Locations include the depot at both ends; stops are everything between.
	stopCount := len(it.Locations) - 2
	if stopCount < 0 {
		stopCount = 0
	}

	q := `
	INSERT INTO trips (trip_id, depot, stop_count, total_distance_km,
		total_distance_miles, total_minutes, method, map_link, legs)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err = r.DB.ExecContext(ctx, q,
		id,
		it.Locations[0].Address,
		stopCount,
		it.TotalDistanceKm,
		it.TotalDistanceMiles,
		it.TotalMinutes,
		it.Method,
		it.MapLink,
		string(legs),
	)
	if err != nil {
		return "", fmt.Errorf("save trip: insert: %w", err)
	}

	return id, nil
}

// Retrieve the most recently planned trips, newest first.
func (r *PostgresTripRepository) ListRecent(ctx context.Context, limit int) (_ []domain.TripRecord, err error) {
	defer obs.Time(ctx, "trips.repo.ListRecent")(&err)

	if r.DB == nil {
		return nil, errors.New("trip repository: db is nil")
	}
	if limit <= 0 {
		limit = 20
	}

	q := `
	SELECT trip_id, depot, stop_count, total_distance_km, total_distance_miles,
		total_minutes, method, map_link, created_at
	FROM trips
	ORDER BY created_at DESC
	LIMIT $1;
	`

	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list trips: query: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TripRecord, 0, limit)
	for rows.Next() {
		var rec domain.TripRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Depot,
			&rec.StopCount,
			&rec.TotalDistanceKm,
			&rec.TotalDistanceMiles,
			&rec.TotalMinutes,
			&rec.Method,
			&rec.MapLink,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list trips: scan rows: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return out, nil
}
