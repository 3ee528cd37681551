package geocode

import (
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"trip-optimizer-service/internal/adapters/ors"
	"trip-optimizer-service/internal/ports"
)

// ProviderType selects which geocoding collaborator backs the service.
type ProviderType string

const (
	ProviderTypeORS    ProviderType = "ors"
	ProviderTypeGoogle ProviderType = "google"
)

// ProviderConfig holds everything needed to construct a geocoder.
type ProviderConfig struct {
	Type      ProviderType
	ORSClient *ors.Client // used by the ors provider
	Country   string      // optional result filter for the ors provider
	APIKey    string      // Google Maps API key (google provider only)
	RateLimit int         // requests per second for the Google client
}

// NewProvider builds a geocoder from configuration, keeping provider
// selection out of the business logic.
func NewProvider(config ProviderConfig) (ports.Geocoder, error) {
	switch config.Type {
	case ProviderTypeORS:
		if config.ORSClient == nil {
			return nil, errors.New("ORS client is required for the ors provider")
		}
		return ors.NewGeocoder(config.ORSClient, config.Country), nil
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	default:
		return nil, fmt.Errorf("unsupported geocoding provider: %s", config.Type)
	}
}

func newGoogleProvider(config ProviderConfig) (ports.Geocoder, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for the google provider")
	}

	clientOpts := []maps.ClientOption{maps.WithAPIKey(config.APIKey)}
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create Google Maps client: %w", err)
	}

	return NewGoogleGeocoder(client), nil
}
