package dto

import "time"

type PlanTripRequest struct {
	Depot string   `json:"depot"`
	Stops []string `json:"stops"`
	// Optional override for the exhaustive-search stop cap. Zero means the
	// configured default.
	MaxExactStops int `json:"max_exact_stops"`
}

type LegResponse struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	DistanceKm      float64 `json:"distance_km"`
	DistanceMiles   float64 `json:"distance_miles"`
	DurationMinutes float64 `json:"duration_minutes"`
}

type ItineraryResponse struct {
	TripID             string        `json:"trip_id,omitempty"`
	Locations          []string      `json:"locations"`
	Legs               []LegResponse `json:"legs"`
	TotalDistanceKm    float64       `json:"total_distance_km"`
	TotalDistanceMiles float64       `json:"total_distance_miles"`
	TotalMinutes       float64       `json:"total_minutes"`
	MapLink            string        `json:"map_link"`
	Method             string        `json:"method"`
}

type TripRecordResponse struct {
	TripID             string    `json:"trip_id"`
	Depot              string    `json:"depot"`
	StopCount          int       `json:"stop_count"`
	TotalDistanceKm    float64   `json:"total_distance_km"`
	TotalDistanceMiles float64   `json:"total_distance_miles"`
	TotalMinutes       float64   `json:"total_minutes"`
	Method             string    `json:"method"`
	MapLink            string    `json:"map_link"`
	CreatedAt          time.Time `json:"created_at"`
}

type ListTripsResponse struct {
	Trips []TripRecordResponse `json:"trips"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
