package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/ports"
)

type stubGeocoder struct {
	coords map[string]domain.Coordinates
	calls  []string
}

func (s *stubGeocoder) Geocode(_ context.Context, address string) (domain.Coordinates, error) {
	s.calls = append(s.calls, address)
	c, ok := s.coords[address]
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, ports.ErrNoGeocodeResult)
	}
	return c, nil
}

type stubMatrixProvider struct {
	matrix ports.Matrix
	err    error
}

func (s *stubMatrixProvider) GetMatrix(_ context.Context, coords []domain.Coordinates) (ports.Matrix, error) {
	return s.matrix, s.err
}

func symmetricMatrix(cells [][]float64) ports.Matrix {
	return ports.Matrix{Distances: cells, Durations: cells}
}

func TestPlanTripValidatesInput(t *testing.T) {
	geocoder := &stubGeocoder{}
	provider := &stubMatrixProvider{}

	if _, err := PlanTrip(context.Background(), PlanTripRequest{Depot: "   ", Stops: []string{"A"}}, geocoder, provider); !errors.Is(err, ErrEmptyDepot) {
		t.Fatalf("blank depot: err = %v, want ErrEmptyDepot", err)
	}
	if _, err := PlanTrip(context.Background(), PlanTripRequest{Depot: "HUB"}, geocoder, provider); !errors.Is(err, ErrNoStops) {
		t.Fatalf("no stops: err = %v, want ErrNoStops", err)
	}
	if len(geocoder.calls) != 0 {
		t.Fatalf("input errors must be rejected before any external call, got %v", geocoder.calls)
	}
}

func TestPlanTripDeduplicatesStops(t *testing.T) {
	geocoder := &stubGeocoder{coords: map[string]domain.Coordinates{
		"HUB": {Lon: 1, Lat: 1},
		"A":   {Lon: 2, Lat: 2},
		"B":   {Lon: 3, Lat: 3},
	}}
	provider := &stubMatrixProvider{matrix: symmetricMatrix([][]float64{
		{0, 10, 20},
		{10, 0, 5},
		{20, 5, 0},
	})}

	req := PlanTripRequest{
		Depot: " HUB ",
		Stops: []string{"A", "hub", "  A ", "B", "  HUB"},
	}

	it, err := PlanTrip(context.Background(), req, geocoder, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Depot + A + B, each geocoded exactly once, depot first.
	if want := []string{"HUB", "A", "B"}; !reflect.DeepEqual(geocoder.calls, want) {
		t.Fatalf("geocoded addresses = %v, want %v", geocoder.calls, want)
	}

	if len(it.Legs) != 3 {
		t.Fatalf("legs = %d, want 3", len(it.Legs))
	}
	if it.Locations[0].Address != "HUB" || it.Locations[len(it.Locations)-1].Address != "HUB" {
		t.Fatalf("itinerary must start and end at the depot, got %v", it.Locations)
	}
}

func TestPlanTripDepotOnlyDegradesToTrivialTour(t *testing.T) {
	geocoder := &stubGeocoder{coords: map[string]domain.Coordinates{"HUB": {Lon: 1, Lat: 1}}}
	provider := &stubMatrixProvider{matrix: symmetricMatrix([][]float64{{0}})}

	it, err := PlanTrip(context.Background(), PlanTripRequest{Depot: "HUB", Stops: []string{"hub"}}, geocoder, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(it.Legs) != 1 {
		t.Fatalf("legs = %d, want 1 (depot back to depot)", len(it.Legs))
	}
	if it.TotalMinutes != 0 {
		t.Fatalf("total minutes = %v, want 0", it.TotalMinutes)
	}
}

func TestPlanTripAbortsOnGeocodeFailure(t *testing.T) {
	geocoder := &stubGeocoder{coords: map[string]domain.Coordinates{"HUB": {Lon: 1, Lat: 1}}}
	provider := &stubMatrixProvider{matrix: symmetricMatrix([][]float64{{0}})}

	_, err := PlanTrip(context.Background(), PlanTripRequest{Depot: "HUB", Stops: []string{"Nowhere"}}, geocoder, provider)
	if !errors.Is(err, ports.ErrNoGeocodeResult) {
		t.Fatalf("err = %v, want wrapped ErrNoGeocodeResult", err)
	}
}

func TestPlanTripRejectsMismatchedMatrix(t *testing.T) {
	geocoder := &stubGeocoder{coords: map[string]domain.Coordinates{
		"HUB": {Lon: 1, Lat: 1},
		"A":   {Lon: 2, Lat: 2},
	}}
	// Provider answers with a 1x1 matrix for 2 locations.
	provider := &stubMatrixProvider{matrix: symmetricMatrix([][]float64{{0}})}

	_, err := PlanTrip(context.Background(), PlanTripRequest{Depot: "HUB", Stops: []string{"A"}}, geocoder, provider)
	if !errors.Is(err, ports.ErrMatrixIncomplete) {
		t.Fatalf("err = %v, want wrapped ErrMatrixIncomplete", err)
	}
}
