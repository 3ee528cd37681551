package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/platform/obs"
	"trip-optimizer-service/internal/ports"
)

// MatrixProvider fetches full n×n distance/duration tables from the
// OpenRouteService matrix endpoint in a single batched call.
type MatrixProvider struct {
	client  *Client
	profile string
}

func NewMatrixProvider(client *Client, profile string) *MatrixProvider {
	if profile == "" {
		profile = "driving-car"
	}
	return &MatrixProvider{client: client, profile: profile}
}

type matrixRequest struct {
	Locations [][]float64 `json:"locations"`
	Metrics   []string    `json:"metrics"`
}

type matrixResponse struct {
	Distances [][]*float64 `json:"distances"`
	Durations [][]*float64 `json:"durations"`
}

// GetMatrix requests distances and durations between every pair of coords.
// Omitting sources/destinations makes ORS return the full matrix, indexed
// like the request's location list.
func (m *MatrixProvider) GetMatrix(
	ctx context.Context,
	coords []domain.Coordinates,
) (_ ports.Matrix, err error) {
	defer obs.Time(ctx, "ors.GetMatrix")(&err)

	if len(coords) == 0 {
		return ports.Matrix{}, errors.New("get matrix: at least one coordinate is required")
	}

	endpoint := fmt.Sprintf("%s/v2/matrix/%s", m.client.baseURL, m.profile)

	locations := make([][]float64, 0, len(coords))
	for _, c := range coords {
		locations = append(locations, c.CoordsToList())
	}

	payload, err := json.Marshal(matrixRequest{
		Locations: locations,
		Metrics:   []string{"distance", "duration"},
	})
	if err != nil {
		return ports.Matrix{}, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := m.client.doWithRetry(ctx, func() (*http.Request, error) {
		return m.client.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	})
	if err != nil {
		return ports.Matrix{}, fmt.Errorf("matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var mr matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return ports.Matrix{}, fmt.Errorf("decode matrix response: %w", err)
	}

	distances, err := denseTable(mr.Distances, len(coords), "distances")
	if err != nil {
		return ports.Matrix{}, err
	}
	durations, err := denseTable(mr.Durations, len(coords), "durations")
	if err != nil {
		return ports.Matrix{}, err
	}

	return ports.Matrix{Distances: distances, Durations: durations}, nil
}

// denseTable validates one response table and converts it to plain floats.
// ORS reports unreachable pairs as nulls, which the optimizer cannot use.
func denseTable(rows [][]*float64, n int, name string) ([][]float64, error) {
	if rows == nil {
		return nil, fmt.Errorf("response is missing %s table: %w", name, ports.ErrMatrixIncomplete)
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%s table has %d rows, want %d: %w", name, len(rows), n, ports.ErrMatrixIncomplete)
	}

	out := make([][]float64, n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%s row %d has %d cells, want %d: %w", name, i, len(row), n, ports.ErrMatrixIncomplete)
		}
		out[i] = make([]float64, n)
		for j, cell := range row {
			if cell == nil {
				return nil, fmt.Errorf("%s[%d][%d] is null: %w", name, i, j, ports.ErrMatrixIncomplete)
			}
			out[i][j] = *cell
		}
	}
	return out, nil
}
