package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-based settings for the trip optimizer service.
type Config struct {
	Port string

	// Geocoding collaborator selection and credentials.
	GeocoderProvider string // "ors" or "google"
	GeocoderCountry  string // optional ISO country filter for ORS results
	GoogleAPIKey     string
	GoogleRateLimit  int

	// OpenRouteService settings (matrix collaborator, default geocoder).
	ORSAPIKey  string
	ORSProfile string

	// MaxExactStops caps exhaustive tour search; above it the planner falls
	// back to the nearest-neighbour heuristic.
	MaxExactStops int

	// Persistence and caching.
	DatabaseURL  string // enables trip history and postgres caches when set
	CacheBackend string // "postgres", "redis" or "none"
	RedisAddr    string
	CacheTTL     time.Duration
}

// Load reads configuration from the environment, preferring a local .env
// file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return &Config{
		Port:             Get("PORT", "8080"),
		GeocoderProvider: Get("GEOCODER_PROVIDER", "ors"),
		GeocoderCountry:  Get("GEOCODER_COUNTRY", ""),
		GoogleAPIKey:     os.Getenv("GOOGLE_MAPS_API_KEY"),
		GoogleRateLimit:  GetInt("GOOGLE_RATE_LIMIT", 10),
		ORSAPIKey:        os.Getenv("ORS_API_KEY"),
		ORSProfile:       Get("ORS_PROFILE", "driving-car"),
		MaxExactStops:    GetInt("MAX_EXACT_STOPS", 9),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		CacheBackend:     Get("CACHE_BACKEND", "none"),
		RedisAddr:        Get("REDIS_ADDR", "localhost:6379"),
		CacheTTL:         GetDuration("CACHE_TTL", 24*time.Hour),
	}
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid integer for %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid duration for %s=%q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
