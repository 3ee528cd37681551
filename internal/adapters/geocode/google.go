package geocode

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/ports"
)

// GoogleAPIClient is the slice of the Google Maps client used here; defined
// as an interface so tests can substitute a fake.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleGeocoder resolves addresses through the Google Maps Geocoding API.
type GoogleGeocoder struct {
	client GoogleAPIClient
}

func NewGoogleGeocoder(client GoogleAPIClient) *GoogleGeocoder {
	return &GoogleGeocoder{client: client}
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("google geocode %q: %w", address, err)
	}

	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("google geocode %q: %w", address, ports.ErrNoGeocodeResult)
	}

	loc := results[0].Geometry.Location
	return domain.Coordinates{Lon: loc.Lng, Lat: loc.Lat}, nil
}
