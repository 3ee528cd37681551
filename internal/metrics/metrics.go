package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TripsPlanned       *prometheus.CounterVec
	CollaboratorErrors prometheus.Counter
	RequestSeconds     *prometheus.HistogramVec
	CacheLookups       *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		TripsPlanned: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "trip_optimizer_trips_planned_total",
			Help: "Total number of planned trips, by optimization method.",
		}, []string{"method"}),
		CollaboratorErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "trip_optimizer_collaborator_errors_total",
			Help: "Total number of errors from the geocoding and matrix collaborators.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trip_optimizer_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		CacheLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "trip_optimizer_cache_lookups_total",
			Help: "Cache lookups by cache name and result (hit or miss).",
		}, []string{"cache", "result"}),
	}
}
