package ports

import (
	"context"
	"errors"

	"trip-optimizer-service/internal/domain"
)

// Returned when the matrix collaborator's response is missing one of the two
// required tables, or a table is not n×n.
var ErrMatrixIncomplete = errors.New("matrix response is incomplete")

// Pairwise travel costs for an ordered list of locations.
// Distances are meters, durations are seconds; matrix[i][j] is the cost from
// location i to location j and is not assumed symmetric. Both tables are
// square with the same dimension.
type Matrix struct {
	Distances [][]float64
	Durations [][]float64
}

// Contract for retrieving a full travel matrix for a list of coordinates.
type MatrixProvider interface {
	// Return distance and duration tables indexed identically to coords.
	// Must fail with ErrMatrixIncomplete (possibly wrapped) when either
	// table is absent or malformed.
	GetMatrix(ctx context.Context, coords []domain.Coordinates) (Matrix, error)
}
