package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema: planned-trip history plus the persistent
// geocode and matrix caches.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		trip_id TEXT PRIMARY KEY,
		depot TEXT NOT NULL,
		stop_count INTEGER NOT NULL,
		total_distance_km DOUBLE PRECISION NOT NULL,
		total_distance_miles DOUBLE PRECISION NOT NULL,
		total_minutes DOUBLE PRECISION NOT NULL,
		method TEXT NOT NULL,
		map_link TEXT NOT NULL,
		legs JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon DOUBLE PRECISION NOT NULL,
        lat DOUBLE PRECISION NOT NULL
    );
	`

	createMatrixCacheQuery := `
	CREATE TABLE IF NOT EXISTS matrix_cache (
        pair_key TEXT PRIMARY KEY,
        distance_meters DOUBLE PRECISION NOT NULL,
        duration_seconds DOUBLE PRECISION NOT NULL
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_trips_created_at
    ON trips(created_at DESC);
	`

	statements := []string{
		createTripsQuery,
		createGeocodeCacheQuery,
		createMatrixCacheQuery,
		createIndexQuery,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}

	return nil
}
