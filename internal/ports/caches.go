package ports

import (
	"context"

	"trip-optimizer-service/internal/domain"
)

// One cached travel-matrix cell (origin -> destination).
type MatrixCell struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Persistent cache mapping normalized addresses to coordinates.
// Implementations return only the keys they found; missing keys are simply
// absent from the result map.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, coords map[string]domain.Coordinates) error
}

// Persistent cache for matrix cells keyed by "originKey|destKey", where the
// keys are domain.Coordinates.Key() values.
type MatrixCache interface {
	GetMany(ctx context.Context, keys []string) (map[string]MatrixCell, error)
	PutMany(ctx context.Context, cells map[string]MatrixCell) error
}
