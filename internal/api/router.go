package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trip-optimizer-service/internal/api/handlers"
	"trip-optimizer-service/internal/metrics"
	"trip-optimizer-service/internal/ports"
)

// RouterConfig carries the wired dependencies for the HTTP surface.
// Repo may be nil, in which case trip history endpoints are not registered.
type RouterConfig struct {
	Geocoder      ports.Geocoder
	Matrix        ports.MatrixProvider
	Repo          ports.TripRepository
	Metrics       *metrics.Metrics
	Registry      *prometheus.Registry
	MaxExactStops int
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{
		Geocoder:      cfg.Geocoder,
		Matrix:        cfg.Matrix,
		Repo:          cfg.Repo,
		Metrics:       cfg.Metrics,
		MaxExactStops: cfg.MaxExactStops,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trips/plan", tripHandler.Plan)
	if cfg.Repo != nil {
		mux.HandleFunc("/trips", tripHandler.List)
	}
	if cfg.Registry != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	}

	return requestIDMiddleware(loggingMiddleware(cfg.Metrics, mux))
}
