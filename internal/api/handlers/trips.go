package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"trip-optimizer-service/internal/api/dto"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/metrics"
	"trip-optimizer-service/internal/ports"
	"trip-optimizer-service/internal/services"
)

// Upper bound on the per-request exhaustive-search override. Anything larger
// would allow a single request to enumerate >479 million permutations.
const maxExactStopsCeiling = 12

type TripHandler struct {
	Geocoder      ports.Geocoder
	Matrix        ports.MatrixProvider
	Repo          ports.TripRepository // optional
	Metrics       *metrics.Metrics
	MaxExactStops int
}

// Plan optimizes one round trip: it validates the request, runs the trip
// planner and renders the itinerary, persisting it when a repository is
// configured.
func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	var req dto.PlanTripRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body", err.Error())
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object", "")
		return
	}

	if req.MaxExactStops < 0 || req.MaxExactStops > maxExactStopsCeiling {
		writeError(w, r, http.StatusBadRequest, "max_exact_stops out of range", "")
		return
	}

	maxExactStops := h.MaxExactStops
	if req.MaxExactStops > 0 {
		maxExactStops = req.MaxExactStops
	}

	svcReq := services.PlanTripRequest{
		Depot:         req.Depot,
		Stops:         req.Stops,
		MaxExactStops: maxExactStops,
	}

	it, err := services.PlanTrip(r.Context(), svcReq, h.Geocoder, h.Matrix)
	if err != nil {
		h.writePlanError(w, r, err)
		return
	}

	if h.Metrics != nil {
		h.Metrics.TripsPlanned.WithLabelValues(it.Method).Inc()
	}

	tripID := ""
	if h.Repo != nil {
		// Persistence is best-effort; the caller still gets the itinerary.
		id, err := h.Repo.SaveTrip(r.Context(), it)
		if err != nil {
			log.Printf("save trip failed: %v", err)
		} else {
			tripID = id
		}
	}

	writeJSON(w, r, http.StatusOK, itineraryResponse(it, tripID))
}

// List returns recently persisted trips, newest first.
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	records, err := h.Repo.ListRecent(r.Context(), 20)
	if err != nil {
		log.Printf("list trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error", "")
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripRecordResponse, 0, len(records))}
	for _, rec := range records {
		res.Trips = append(res.Trips, dto.TripRecordResponse{
			TripID:             rec.ID,
			Depot:              rec.Depot,
			StopCount:          rec.StopCount,
			TotalDistanceKm:    rec.TotalDistanceKm,
			TotalDistanceMiles: rec.TotalDistanceMiles,
			TotalMinutes:       rec.TotalMinutes,
			Method:             rec.Method,
			MapLink:            rec.MapLink,
			CreatedAt:          rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// writePlanError maps planner failures onto the error taxonomy: input errors
// are the caller's fault, collaborator failures are bad-gateway, everything
// else is internal.
func (h *TripHandler) writePlanError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyDepot), errors.Is(err, services.ErrNoStops):
		writeError(w, r, http.StatusBadRequest, "invalid trip request", err.Error())
	case errors.Is(err, ports.ErrNoGeocodeResult):
		h.countCollaboratorError()
		writeError(w, r, http.StatusBadGateway, "address could not be resolved", err.Error())
	case errors.Is(err, ports.ErrMatrixIncomplete):
		h.countCollaboratorError()
		writeError(w, r, http.StatusBadGateway, "travel matrix unavailable", err.Error())
	default:
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error", "")
	}
}

func (h *TripHandler) countCollaboratorError() {
	if h.Metrics != nil {
		h.Metrics.CollaboratorErrors.Inc()
	}
}

func itineraryResponse(it *domain.Itinerary, tripID string) dto.ItineraryResponse {
	locations := make([]string, 0, len(it.Locations))
	for _, loc := range it.Locations {
		locations = append(locations, loc.Address)
	}

	legs := make([]dto.LegResponse, 0, len(it.Legs))
	for _, leg := range it.Legs {
		legs = append(legs, dto.LegResponse{
			From:            leg.From,
			To:              leg.To,
			DistanceKm:      leg.DistanceKm,
			DistanceMiles:   leg.DistanceMiles,
			DurationMinutes: leg.DurationMinutes,
		})
	}

	return dto.ItineraryResponse{
		TripID:             tripID,
		Locations:          locations,
		Legs:               legs,
		TotalDistanceKm:    it.TotalDistanceKm,
		TotalDistanceMiles: it.TotalDistanceMiles,
		TotalMinutes:       it.TotalMinutes,
		MapLink:            it.MapLink,
		Method:             it.Method,
	}
}
