package ports

import (
	"context"

	"trip-optimizer-service/internal/domain"
)

// Port: a boundary for persisting planned itineraries.
type TripRepository interface {
	// Store a planned itinerary and return its generated id.
	SaveTrip(ctx context.Context, it *domain.Itinerary) (string, error)
	// Retrieve the most recently planned trips, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.TripRecord, error)
}
