package geocode_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"trip-optimizer-service/internal/adapters/geocode"
	"trip-optimizer-service/internal/ports"
)

type fakeGoogleClient struct {
	results []maps.GeocodingResult
	err     error
}

func (f *fakeGoogleClient) Geocode(_ context.Context, _ *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	return f.results, f.err
}

func TestGoogleGeocoder(t *testing.T) {
	t.Run("returns first result", func(t *testing.T) {
		result := maps.GeocodingResult{}
		result.Geometry.Location = maps.LatLng{Lat: 33.4455, Lng: -112.0907}

		g := geocode.NewGoogleGeocoder(&fakeGoogleClient{results: []maps.GeocodingResult{result}})
		coords, err := g.Geocode(context.Background(), "1901 W Madison St")
		require.NoError(t, err)
		assert.InEpsilon(t, -112.0907, coords.Lon, 0.0001)
		assert.InEpsilon(t, 33.4455, coords.Lat, 0.0001)
	})

	t.Run("empty result set", func(t *testing.T) {
		g := geocode.NewGoogleGeocoder(&fakeGoogleClient{})
		_, err := g.Geocode(context.Background(), "nowhere")
		assert.ErrorIs(t, err, ports.ErrNoGeocodeResult)
	})

	t.Run("propagates API error", func(t *testing.T) {
		apiErr := errors.New("quota exceeded")
		g := geocode.NewGoogleGeocoder(&fakeGoogleClient{err: apiErr})
		_, err := g.Geocode(context.Background(), "anywhere")
		assert.ErrorIs(t, err, apiErr)
	})
}

func TestNewProviderRejectsUnknownType(t *testing.T) {
	_, err := geocode.NewProvider(geocode.ProviderConfig{Type: "carrier-pigeon"})
	require.Error(t, err)
}
