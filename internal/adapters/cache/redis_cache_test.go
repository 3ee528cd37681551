package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-optimizer-service/internal/adapters/cache"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/ports"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisGeocodeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRedisGeocodeCache(newTestRedis(t), time.Hour)

	stored := map[string]domain.Coordinates{
		"1901 W Madison St": {Lon: -112.09, Lat: 33.44},
		"200 E Van Buren":   {Lon: -112.07, Lat: 33.45},
	}
	require.NoError(t, c.PutMany(ctx, stored))

	got, err := c.GetMany(ctx, []string{"1901 W Madison St", "200 E Van Buren", "unknown"})
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Equal(t, stored["1901 W Madison St"], got["1901 W Madison St"])
	assert.Equal(t, stored["200 E Van Buren"], got["200 E Van Buren"])
	assert.NotContains(t, got, "unknown")
}

func TestRedisGeocodeCacheEmptyInput(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRedisGeocodeCache(newTestRedis(t), time.Hour)

	got, err := c.GetMany(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, c.PutMany(ctx, nil))
}

func TestRedisMatrixCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := cache.NewRedisMatrixCache(newTestRedis(t), time.Hour)

	stored := map[string]ports.MatrixCell{
		"a|b": {DistanceMeters: 5000, DurationSeconds: 600},
		"b|a": {DistanceMeters: 5100, DurationSeconds: 630},
	}
	require.NoError(t, c.PutMany(ctx, stored))

	got, err := c.GetMany(ctx, []string{"a|b", "b|a", "a|c"})
	require.NoError(t, err)

	assert.Len(t, got, 2)
	assert.Equal(t, stored["a|b"], got["a|b"])
	assert.NotContains(t, got, "a|c")
}

func TestRedisMatrixCacheHonorsTTL(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewRedisMatrixCache(client, time.Minute)
	require.NoError(t, c.PutMany(ctx, map[string]ports.MatrixCell{"a|b": {DistanceMeters: 1, DurationSeconds: 2}}))

	srv.FastForward(2 * time.Minute)

	got, err := c.GetMany(ctx, []string{"a|b"})
	require.NoError(t, err)
	assert.Empty(t, got)
}
