package ports

import (
	"context"
	"errors"

	"trip-optimizer-service/internal/domain"
)

// Returned when the geocoding collaborator resolves an address to an empty
// result set.
var ErrNoGeocodeResult = errors.New("no geocode results for address")

// Contract for resolving a free-text address into coordinates.
type Geocoder interface {
	// Resolve one address. Must fail with ErrNoGeocodeResult (possibly
	// wrapped) when the provider returns an empty result set.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}
