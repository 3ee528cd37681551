package cache

import (
	"context"
	"fmt"
	"log"

	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/metrics"
	"trip-optimizer-service/internal/ports"
)

// CachingGeocoder checks a persistent cache before delegating to the real
// geocoding collaborator. Cache read failures abort the lookup; write
// failures are logged and otherwise ignored so a flaky cache cannot fail a
// request that already has its answer.
type CachingGeocoder struct {
	Inner   ports.Geocoder
	Cache   ports.GeocodeCache
	Metrics *metrics.Metrics
}

func (g *CachingGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, error) {
	hits, err := g.Cache.GetMany(ctx, []string{address})
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode cache lookup: %w", err)
	}

	if c, ok := hits[address]; ok {
		g.countLookup("geocode", "hit")
		return c, nil
	}
	g.countLookup("geocode", "miss")

	coords, err := g.Inner.Geocode(ctx, address)
	if err != nil {
		return domain.Coordinates{}, err
	}

	if err := g.Cache.PutMany(ctx, map[string]domain.Coordinates{address: coords}); err != nil {
		log.Printf("geocode cache write failed: %v", err)
	}

	return coords, nil
}

func (g *CachingGeocoder) countLookup(cache, result string) {
	if g.Metrics != nil {
		g.Metrics.CacheLookups.WithLabelValues(cache, result).Inc()
	}
}
