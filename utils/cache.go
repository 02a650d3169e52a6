// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"careconnect/config"
)

// IdempotencyCacheClient backs booking idempotency keys. It stays nil when
// REDIS_ADDR is empty.
var IdempotencyCacheClient *redis.Client

// InitIdempotencyCache connects to Redis using the idempotency DB.
func InitIdempotencyCache() {
	if config.AppConfig.RedisAddr == "" {
		GetLogger().Info("REDIS_ADDR not set, booking idempotency keys are disabled")
		return
	}
	IdempotencyCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisIdempotencyDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := IdempotencyCacheClient.Ping(ctx).Result(); err != nil {
		GetLogger().Fatal("Failed to connect to Redis (Idempotency)", zap.Error(err))
	}
}

// GetIdempotencyCacheClient returns the Redis client for idempotency keys, or nil.
func GetIdempotencyCacheClient() *redis.Client {
	return IdempotencyCacheClient
}
