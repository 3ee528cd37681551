package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trip-optimizer-service/internal/platform/obs"
	"trip-optimizer-service/internal/ports"
)

const matrixKeyPrefix = "mx:"

// RedisMatrixCache caches travel-matrix cells in Redis with a TTL, keyed by
// "originKey|destKey" coordinate pairs. Values are JSON-encoded MatrixCells.
type RedisMatrixCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMatrixCache(client *redis.Client, ttl time.Duration) *RedisMatrixCache {
	return &RedisMatrixCache{client: client, ttl: ttl}
}

func (r *RedisMatrixCache) GetMany(
	ctx context.Context,
	keys []string,
) (_ map[string]ports.MatrixCell, err error) {
	defer obs.Time(ctx, "matrix.rediscache.GetMany")(&err)

	if r.client == nil {
		return nil, errors.New("matrix cache: redis client is nil")
	}

	if len(keys) == 0 {
		return map[string]ports.MatrixCell{}, nil
	}

	redisKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		redisKeys = append(redisKeys, matrixKeyPrefix+k)
	}

	values, err := r.client.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get matrix cache: redis mget: %w", err)
	}

	out := make(map[string]ports.MatrixCell, len(keys))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // cache miss
		}

		var cell ports.MatrixCell
		if err := json.Unmarshal([]byte(raw), &cell); err != nil {
			return nil, fmt.Errorf("get matrix cache: decode %q: %w", keys[i], err)
		}
		out[keys[i]] = cell
	}

	return out, nil
}

func (r *RedisMatrixCache) PutMany(ctx context.Context, cells map[string]ports.MatrixCell) error {
	if r.client == nil {
		return errors.New("matrix cache: redis client is nil")
	}

	if len(cells) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for key, cell := range cells {
		payload, err := json.Marshal(cell)
		if err != nil {
			return fmt.Errorf("insert matrix cache: encode %q: %w", key, err)
		}
		pipe.Set(ctx, matrixKeyPrefix+key, payload, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert matrix cache: redis pipeline: %w", err)
	}

	return nil
}
