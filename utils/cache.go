// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"freshfold/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds in-flight booking wizard sessions.
	SessionCacheClient *redis.Client
	// AuthCacheClient holds magic-link tokens and revoked token hashes.
	AuthCacheClient *redis.Client
	// NoticeCacheClient holds per-session notification feeds.
	NoticeCacheClient *redis.Client
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
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	NoticeCacheClient = newRedisClient(config.AppConfig.RedisNoticeDB)
}

// GetSessionCacheClient returns the wizard session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		SessionCacheClient = newRedisClient(config.AppConfig.RedisSessionDB)
	}
	return SessionCacheClient
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetNoticeCacheClient returns the Redis client for notification feeds.
func GetNoticeCacheClient() *redis.Client {
	if NoticeCacheClient == nil {
		NoticeCacheClient = newRedisClient(config.AppConfig.RedisNoticeDB)
	}
	return NoticeCacheClient
}
