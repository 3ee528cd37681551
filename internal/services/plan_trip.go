package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/platform/obs"
	"trip-optimizer-service/internal/ports"
)

// Input validation failures, rejected before any external call.
var (
	ErrEmptyDepot = errors.New("depot address must be non-empty")
	ErrNoStops    = errors.New("at least one stop address is required")
)

type PlanTripRequest struct {
	Depot         string
	Stops         []string
	MaxExactStops int
}

// PlanTrip orchestrates one trip optimization end to end: deduplicate the
// input addresses, resolve coordinates, fetch the travel matrix in a single
// batched call, search for the minimal-duration round trip and assemble the
// itinerary.
//
// Any geocoding or matrix failure aborts the whole request; a partial
// itinerary is never returned and nothing is retried at this layer.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	geocoder ports.Geocoder,
	matrixProvider ports.MatrixProvider,
) (_ *domain.Itinerary, err error) {
	defer obs.Time(ctx, "services.PlanTrip")(&err)

	depot := normalizeAddress(req.Depot)
	if depot == "" {
		return nil, ErrEmptyDepot
	}

	if len(req.Stops) == 0 {
		return nil, ErrNoStops
	}

	// Stops that normalize to the depot or to an earlier stop are dropped;
	// a list that dedupes to nothing degrades to the trivial depot-only tour.
	stops := dedupeStops(depot, req.Stops)

	// Geocoding is sequential per location; the matrix call is batched.
	addresses := append([]string{depot}, stops...)
	locations := make([]domain.Location, 0, len(addresses))
	for _, addr := range addresses {
		coords, err := geocoder.Geocode(ctx, addr)
		if err != nil {
			return nil, fmt.Errorf("plan trip: geocode %q: %w", addr, err)
		}
		locations = append(locations, domain.Location{Address: addr, Coords: coords})
	}

	coords := make([]domain.Coordinates, 0, len(locations))
	for _, loc := range locations {
		coords = append(coords, loc.Coords)
	}

	matrix, err := matrixProvider.GetMatrix(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("plan trip: get travel matrix: %w", err)
	}

	if len(matrix.Durations) != len(locations) || len(matrix.Distances) != len(locations) {
		return nil, fmt.Errorf(
			"plan trip: matrix dimension %dx%d does not match %d locations: %w",
			len(matrix.Distances), len(matrix.Durations), len(locations), ports.ErrMatrixIncomplete,
		)
	}

	tour, method := ExactTourByDuration(matrix.Durations, req.MaxExactStops)

	return BuildItinerary(locations, tour, matrix.Distances, matrix.Durations, method), nil
}

// normalizeAddress collapses whitespace so equality checks and cache keys are
// stable across input variants.
func normalizeAddress(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dedupeStops normalizes the stop list and drops entries that match the depot
// or an earlier stop case-insensitively, preserving first-occurrence order.
func dedupeStops(depot string, stops []string) []string {
	seen := map[string]struct{}{strings.ToLower(depot): {}}

	out := make([]string, 0, len(stops))
	for _, s := range stops {
		norm := normalizeAddress(s)
		if norm == "" {
			continue
		}

		key := strings.ToLower(norm)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, norm)
	}

	return out
}
