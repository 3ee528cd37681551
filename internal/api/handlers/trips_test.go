package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-optimizer-service/internal/api/handlers"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/ports"
)

type stubGeocoder struct {
	coords map[string]domain.Coordinates
}

func (s *stubGeocoder) Geocode(_ context.Context, address string) (domain.Coordinates, error) {
	c, ok := s.coords[address]
	if !ok {
		return domain.Coordinates{}, ports.ErrNoGeocodeResult
	}
	return c, nil
}

type stubMatrixProvider struct {
	matrix ports.Matrix
	err    error
}

func (s *stubMatrixProvider) GetMatrix(_ context.Context, _ []domain.Coordinates) (ports.Matrix, error) {
	return s.matrix, s.err
}

func planningHandler() *handlers.TripHandler {
	cells := [][]float64{
		{0, 600, 900},
		{600, 0, 1200},
		{900, 1200, 0},
	}
	return &handlers.TripHandler{
		Geocoder: &stubGeocoder{coords: map[string]domain.Coordinates{
			"HUB": {Lon: 1, Lat: 1},
			"A":   {Lon: 2, Lat: 2},
			"B":   {Lon: 3, Lat: 3},
		}},
		Matrix:        &stubMatrixProvider{matrix: ports.Matrix{Distances: cells, Durations: cells}},
		MaxExactStops: 9,
	}
}

func postPlan(t *testing.T, h *handlers.TripHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/trips/plan", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestPlanReturnsItinerary(t *testing.T) {
	rec := postPlan(t, planningHandler(), `{"depot":"HUB","stops":["A","B"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Locations    []string `json:"locations"`
		Legs         []any    `json:"legs"`
		TotalMinutes float64  `json:"total_minutes"`
		Method       string   `json:"method"`
		MapLink      string   `json:"map_link"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.Equal(t, []string{"HUB", "A", "B", "HUB"}, res.Locations)
	assert.Len(t, res.Legs, 3)
	assert.Equal(t, "exact", res.Method)
	// 600 + 1200 + 900 seconds = 45 minutes.
	assert.InDelta(t, 45.0, res.TotalMinutes, 0.001)
	assert.Contains(t, res.MapLink, "https://www.google.com/maps/dir/")
}

func TestPlanRejectsInvalidInput(t *testing.T) {
	h := planningHandler()

	cases := []struct {
		name string
		body string
	}{
		{"missing depot", `{"stops":["A"]}`},
		{"empty stops", `{"depot":"HUB","stops":[]}`},
		{"malformed json", `{"depot":`},
		{"unknown field", `{"depot":"HUB","stops":["A"],"nope":true}`},
		{"threshold too large", `{"depot":"HUB","stops":["A"],"max_exact_stops":99}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postPlan(t, h, tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var res struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestPlanSurfacesResolutionErrors(t *testing.T) {
	rec := postPlan(t, planningHandler(), `{"depot":"HUB","stops":["Nowhere"]}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var res struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "address could not be resolved", res.Error)
	assert.Contains(t, res.Details, "Nowhere")
}

func TestPlanSurfacesMatrixErrors(t *testing.T) {
	h := planningHandler()
	h.Matrix = &stubMatrixProvider{err: ports.ErrMatrixIncomplete}

	rec := postPlan(t, h, `{"depot":"HUB","stops":["A"]}`)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var res struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "travel matrix unavailable", res.Error)
}

func TestPlanMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trips/plan", nil)
	rec := httptest.NewRecorder()
	planningHandler().Plan(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}
