// File: services/state/cache.go
package state

import (
	"context"
	"encoding/json"

	"fifty3/models"

	"github.com/go-redis/redis/v8"
)

// stateKey matches the original browser app's localStorage key, so the
// mirror survives a schema-compatible reimplementation.
const stateKey = "fifty3-state-v1"

// RedisStateCache mirrors the aggregate into Redis, the server-side stand-in
// for the browser's localStorage backup.
type RedisStateCache struct {
	client *redis.Client
}

func NewRedisStateCache(client *redis.Client) *RedisStateCache {
	return &RedisStateCache{client: client}
}

func (s *RedisStateCache) Get(ctx context.Context) (*models.Aggregate, error) {
	data, err := s.client.Get(ctx, stateKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var agg models.Aggregate
	if err := json.Unmarshal([]byte(data), &agg); err != nil {
		return nil, err
	}
	return &agg, nil
}

func (s *RedisStateCache) Put(ctx context.Context, agg models.Aggregate) error {
	b, err := json.Marshal(agg)
	if err != nil {
		return err
	}
	// The mirror is a backup, not a cache entry; it never expires.
	return s.client.Set(ctx, stateKey, b, 0).Err()
}
