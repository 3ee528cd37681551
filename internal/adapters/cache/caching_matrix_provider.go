package cache

import (
	"context"
	"fmt"
	"log"

	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/metrics"
	"trip-optimizer-service/internal/ports"
)

// CachingMatrixProvider assembles the travel matrix from cached cells when
// every off-diagonal pair is present, and otherwise fetches the full matrix
// from the collaborator and caches all its cells. Partial cache hits still
// trigger a full fetch: the collaborator prices the whole matrix as a single
// batched call anyway.
type CachingMatrixProvider struct {
	Inner   ports.MatrixProvider
	Cache   ports.MatrixCache
	Metrics *metrics.Metrics
}

func (p *CachingMatrixProvider) GetMatrix(
	ctx context.Context,
	coords []domain.Coordinates,
) (ports.Matrix, error) {
	n := len(coords)
	if n > 1 {
		keys := pairKeys(coords)

		hits, err := p.Cache.GetMany(ctx, keys)
		if err != nil {
			return ports.Matrix{}, fmt.Errorf("matrix cache lookup: %w", err)
		}

		if len(hits) == len(keys) {
			p.countLookup("matrix", "hit")
			return assembleMatrix(coords, hits), nil
		}
	}
	p.countLookup("matrix", "miss")

	matrix, err := p.Inner.GetMatrix(ctx, coords)
	if err != nil {
		return ports.Matrix{}, err
	}

	if n > 1 {
		cells := make(map[string]ports.MatrixCell, n*(n-1))
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				cells[pairKey(coords[i], coords[j])] = ports.MatrixCell{
					DistanceMeters:  matrix.Distances[i][j],
					DurationSeconds: matrix.Durations[i][j],
				}
			}
		}
		if err := p.Cache.PutMany(ctx, cells); err != nil {
			log.Printf("matrix cache write failed: %v", err)
		}
	}

	return matrix, nil
}

func (p *CachingMatrixProvider) countLookup(cache, result string) {
	if p.Metrics != nil {
		p.Metrics.CacheLookups.WithLabelValues(cache, result).Inc()
	}
}

func pairKey(from, to domain.Coordinates) string {
	return from.Key() + "|" + to.Key()
}

// pairKeys lists every off-diagonal pair in row-major order.
func pairKeys(coords []domain.Coordinates) []string {
	keys := make([]string, 0, len(coords)*(len(coords)-1))
	for i := range coords {
		for j := range coords {
			if i != j {
				keys = append(keys, pairKey(coords[i], coords[j]))
			}
		}
	}
	return keys
}

// assembleMatrix rebuilds the square tables from cached cells.
// Diagonal entries are zero; the optimizer never reads them.
func assembleMatrix(coords []domain.Coordinates, cells map[string]ports.MatrixCell) ports.Matrix {
	n := len(coords)
	distances := make([][]float64, n)
	durations := make([][]float64, n)
	for i := 0; i < n; i++ {
		distances[i] = make([]float64, n)
		durations[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			cell := cells[pairKey(coords[i], coords[j])]
			distances[i][j] = cell.DistanceMeters
			durations[i][j] = cell.DurationSeconds
		}
	}
	return ports.Matrix{Distances: distances, Durations: durations}
}
