package utils

import (
	"context"
	"time"

	"photostudio/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var (
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// BookingCacheClient is the dedicated client for booking session storage.
	BookingCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		GetLogger().Warn("Redis unavailable, falling back to in-memory stores",
			zap.Int("db", db), zap.Error(err))
		return nil
	}
	return client
}

// InitRedis establishes the Redis clients. Unlike a hard dependency, a failed
// connection leaves the clients nil; callers must treat nil as "cache disabled"
// and fall back to in-memory behavior.
func InitRedis() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	BookingCacheClient = newRedisClient(config.AppConfig.RedisBookDB)
}

// GetAuthCacheClient returns the Redis client for authorization caching, or nil.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// GetBookingCacheClient returns the Redis client for booking sessions, or nil.
func GetBookingCacheClient() *redis.Client {
	return BookingCacheClient
}
