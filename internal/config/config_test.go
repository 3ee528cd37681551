package config

import (
	"testing"
	"time"
)

func TestGetFallsBack(t *testing.T) {
	if got := Get("TRIP_OPTIMIZER_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("Get = %q, want fallback", got)
	}

	t.Setenv("TRIP_OPTIMIZER_SET_KEY", "value")
	if got := Get("TRIP_OPTIMIZER_SET_KEY", "fallback"); got != "value" {
		t.Fatalf("Get = %q, want value", got)
	}
}

func TestGetIntRejectsGarbage(t *testing.T) {
	t.Setenv("TRIP_OPTIMIZER_INT", "not-a-number")
	if got := GetInt("TRIP_OPTIMIZER_INT", 9); got != 9 {
		t.Fatalf("GetInt = %d, want default 9", got)
	}

	t.Setenv("TRIP_OPTIMIZER_INT", "12")
	if got := GetInt("TRIP_OPTIMIZER_INT", 9); got != 12 {
		t.Fatalf("GetInt = %d, want 12", got)
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("TRIP_OPTIMIZER_TTL", "90m")
	if got := GetDuration("TRIP_OPTIMIZER_TTL", time.Hour); got != 90*time.Minute {
		t.Fatalf("GetDuration = %s, want 90m", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.MaxExactStops != 9 {
		t.Fatalf("MaxExactStops = %d, want 9", cfg.MaxExactStops)
	}
	if cfg.GeocoderProvider != "ors" {
		t.Fatalf("GeocoderProvider = %q, want ors", cfg.GeocoderProvider)
	}
	if cfg.CacheBackend != "none" {
		t.Fatalf("CacheBackend = %q, want none", cfg.CacheBackend)
	}
}
