package services

import (
	"math"
	"net/url"
	"strings"

	"trip-optimizer-service/internal/domain"
)

const (
	metersPerKm  = 1000.0
	milesPerKm   = 0.621371
	mapLinkBase  = "https://www.google.com/maps/dir/"
	secondsPerMn = 60.0
)

// Turn an index-ordered tour into the final itinerary.
//
// Per-leg figures are rounded for display (distances to 2 decimals, minutes
// to 1), but the totals are accumulated from the raw matrix values and
// rounded exactly once at the end. Summing already-rounded legs would
// compound rounding error, so the totals may legitimately differ from the sum
// of the displayed leg values.
func BuildItinerary(
	locations []domain.Location,
	tour []int,
	distances [][]float64,
	durations [][]float64,
	method string,
) *domain.Itinerary {
	orderedLocations := make([]domain.Location, 0, len(tour))
	for _, idx := range tour {
		orderedLocations = append(orderedLocations, locations[idx])
	}

	legs := make([]domain.Leg, 0, len(tour)-1)
	totalMeters := 0.0
	totalSeconds := 0.0

	for i := 0; i < len(tour)-1; i++ {
		from, to := tour[i], tour[i+1]
		meters := distances[from][to]
		seconds := durations[from][to]

		totalMeters += meters
		totalSeconds += seconds

		km := meters / metersPerKm
		legs = append(legs, domain.Leg{
			From:            locations[from].Address,
			To:              locations[to].Address,
			DistanceKm:      round2(km),
			DistanceMiles:   round2(km * milesPerKm),
			DurationMinutes: round1(seconds / secondsPerMn),
		})
	}

	totalKm := totalMeters / metersPerKm

	return &domain.Itinerary{
		Locations:          orderedLocations,
		Legs:               legs,
		TotalDistanceKm:    round2(totalKm),
		TotalDistanceMiles: round2(totalKm * milesPerKm),
		TotalMinutes:       round1(totalSeconds / secondsPerMn),
		MapLink:            mapLink(orderedLocations),
		Method:             method,
	}
}

// mapLink renders a sharable directions URL by percent-encoding the ordered
// addresses, depot to depot.
func mapLink(ordered []domain.Location) string {
	parts := make([]string, 0, len(ordered))
	for _, loc := range ordered {
		parts = append(parts, url.PathEscape(loc.Address))
	}
	return mapLinkBase + strings.Join(parts, "/")
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func round1(v float64) float64 { return math.Round(v*10) / 10 }
