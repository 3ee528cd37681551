package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-optimizer-service/internal/platform/obs"
	"trip-optimizer-service/internal/ports"
)

// PostgresMatrixCache is a SQL-backed cache for travel-matrix cells, keyed by
// "originKey|destKey" coordinate pairs.
type PostgresMatrixCache struct {
	DB *sql.DB
}

func NewPostgresMatrixCache(db *sql.DB) *PostgresMatrixCache {
	return &PostgresMatrixCache{DB: db}
}

// Fetch cached cells for the given pair keys.
func (s *PostgresMatrixCache) GetMany(
	ctx context.Context,
	keys []string,
) (_ map[string]ports.MatrixCell, err error) {
	defer obs.Time(ctx, "matrix.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("matrix cache: db is nil")
	}

	if len(keys) == 0 {
		return map[string]ports.MatrixCell{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}

	q := `
	SELECT pair_key, distance_meters, duration_seconds
    FROM matrix_cache
    WHERE pair_key = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get matrix cache: query matrix_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.MatrixCell, len(uniq))
	for rows.Next() {
		var key string
		var meters, seconds float64
		if err := rows.Scan(&key, &meters, &seconds); err != nil {
			return nil, fmt.Errorf("get matrix cache: scan rows: %w", err)
		}
		out[key] = ports.MatrixCell{DistanceMeters: meters, DurationSeconds: seconds}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get matrix cache: row iteration: %w", err)
	}

	return out, nil
}

// Store many matrix cells.
func (s *PostgresMatrixCache) PutMany(ctx context.Context, cells map[string]ports.MatrixCell) error {
	if s.DB == nil {
		return errors.New("matrix cache: db is nil")
	}

	if len(cells) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert matrix cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO matrix_cache (pair_key, distance_meters, duration_seconds)
    VALUES ($1, $2, $3)
	ON CONFLICT (pair_key) DO UPDATE
	SET distance_meters = EXCLUDED.distance_meters,
		duration_seconds = EXCLUDED.duration_seconds;
	`)
	if err != nil {
		return fmt.Errorf("insert matrix cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, cell := range cells {
		if strings.TrimSpace(key) == "" {
			return errors.New("insert matrix cache: empty pair key")
		}

		if _, err := stmt.ExecContext(ctx, key, cell.DistanceMeters, cell.DurationSeconds); err != nil {
			return fmt.Errorf("insert matrix cache pair=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert matrix cache commit: %w", err)
	}

	return nil
}
