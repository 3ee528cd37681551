package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/platform/obs"
)

const geocodeKeyPrefix = "geo:"

// RedisGeocodeCache caches address -> coordinates lookups in Redis with a TTL.
// Values are JSON-encoded Coordinates.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

func (r *RedisGeocodeCache) GetMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.rediscache.GetMany")(&err)

	if r.client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	if len(addresses) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	keys := make([]string, 0, len(addresses))
	for _, a := range addresses {
		keys = append(keys, geocodeKeyPrefix+a)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(addresses))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // cache miss
		}

		var c domain.Coordinates
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			return nil, fmt.Errorf("get geocode cache: decode %q: %w", addresses[i], err)
		}
		out[addresses[i]] = c
	}

	return out, nil
}

func (r *RedisGeocodeCache) PutMany(ctx context.Context, coords map[string]domain.Coordinates) error {
	if r.client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(coords) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for addr, c := range coords {
		payload, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("insert geocode cache: encode %q: %w", addr, err)
		}
		pipe.Set(ctx, geocodeKeyPrefix+addr, payload, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis pipeline: %w", err)
	}

	return nil
}
