// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"fifty3/config"

	"github.com/go-redis/redis/v8"
)

// StateCacheClient is the Redis client backing the local mirror of the
// persisted aggregate.
var StateCacheClient *redis.Client

// InitStateCache initializes the Redis client for the state mirror.
func InitStateCache() {
	StateCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStateDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StateCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (State Cache): %v", err)
	}
}

// GetStateCacheClient returns the Redis client for the state mirror.
func GetStateCacheClient() *redis.Client {
	if StateCacheClient == nil {
		InitStateCache()
	}
	return StateCacheClient
}
