package domain

import "time"

// Represents a single resolved location in a trip.
// Index 0 is always the depot; the remaining indices are stops in input order.
// A Location is created once per unique input address and never mutated.
type Location struct {
	Address string
	Coords  Coordinates
}

// Represents one hop between two consecutive locations in a tour.
// Distances and durations are rounded for display; totals are accumulated
// from the raw matrix values before rounding (see BuildItinerary).
type Leg struct {
	From            string
	To              string
	DistanceKm      float64
	DistanceMiles   float64
	DurationMinutes float64
}

// Represents the final optimized round trip.
// An Itinerary is the output of the tour optimizer and is immutable planning
// data: ordered locations, per-leg metrics, aggregate totals and a sharable
// map link. Method records whether the tour came from exhaustive search or
// the nearest-neighbour fallback.
type Itinerary struct {
	Locations          []Location
	Legs               []Leg
	TotalDistanceKm    float64
	TotalDistanceMiles float64
	TotalMinutes       float64
	MapLink            string
	Method             string
}

// Summary of a persisted trip, as returned by the trip repository.
type TripRecord struct {
	ID                 string
	Depot              string
	StopCount          int
	TotalDistanceKm    float64
	TotalDistanceMiles float64
	TotalMinutes       float64
	Method             string
	MapLink            string
	CreatedAt          time.Time
}
