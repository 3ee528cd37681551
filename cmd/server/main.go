package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"trip-optimizer-service/internal/adapters/cache"
	"trip-optimizer-service/internal/adapters/geocode"
	"trip-optimizer-service/internal/adapters/ors"
	"trip-optimizer-service/internal/adapters/repositories"
	"trip-optimizer-service/internal/api"
	"trip-optimizer-service/internal/config"
	"trip-optimizer-service/internal/metrics"
	"trip-optimizer-service/internal/platform/db"
	"trip-optimizer-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (ORS, Google, Postgres, Redis) behind ports and
// starts the HTTP server.
func main() {
	cfg := config.Load()

	if strings.TrimSpace(cfg.ORSAPIKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	orsClient, err := ors.NewClient(cfg.ORSAPIKey)
	if err != nil {
		log.Fatal(err)
	}

	geocoder, err := geocode.NewProvider(geocode.ProviderConfig{
		Type:      geocode.ProviderType(cfg.GeocoderProvider),
		ORSClient: orsClient,
		Country:   cfg.GeocoderCountry,
		APIKey:    cfg.GoogleAPIKey,
		RateLimit: cfg.GoogleRateLimit,
	})
	if err != nil {
		log.Fatal(err)
	}

	var matrixProvider ports.MatrixProvider = ors.NewMatrixProvider(orsClient, cfg.ORSProfile)

	var database *sql.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer database.Close()

		// Schema init is idempotent; running it on startup keeps local and
		// containerized runs zero-step.
		if err := repositories.InitSchema(database); err != nil {
			log.Fatal(err)
		}
	}

	// Persistent caches avoid repeated geocode/matrix collaborator calls.
	switch cfg.CacheBackend {
	case "postgres":
		if database == nil {
			log.Fatal("CACHE_BACKEND=postgres requires DATABASE_URL")
		}
		geocoder = &cache.CachingGeocoder{
			Inner:   geocoder,
			Cache:   cache.NewPostgresGeocodeCache(database),
			Metrics: appMetrics,
		}
		matrixProvider = &cache.CachingMatrixProvider{
			Inner:   matrixProvider,
			Cache:   cache.NewPostgresMatrixCache(database),
			Metrics: appMetrics,
		}
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis ping failed: %v", err)
		}
		geocoder = &cache.CachingGeocoder{
			Inner:   geocoder,
			Cache:   cache.NewRedisGeocodeCache(client, cfg.CacheTTL),
			Metrics: appMetrics,
		}
		matrixProvider = &cache.CachingMatrixProvider{
			Inner:   matrixProvider,
			Cache:   cache.NewRedisMatrixCache(client, cfg.CacheTTL),
			Metrics: appMetrics,
		}
	case "none":
	default:
		log.Fatalf("unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}

	var repo ports.TripRepository
	if database != nil {
		repo = repositories.NewPostgresTripRepository(database)
	}

	router := api.NewRouter(api.RouterConfig{
		Geocoder:      geocoder,
		Matrix:        matrixProvider,
		Repo:          repo,
		Metrics:       appMetrics,
		Registry:      reg,
		MaxExactStops: cfg.MaxExactStops,
	})

	// Timeouts are tuned for cold-cache trip planning (external API latency).
	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
