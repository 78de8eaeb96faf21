// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"homeland/config"

	"github.com/go-redis/redis/v8"
)

// ChatContextClient is the Redis client backing the assistant's rolling
// conversation context. No listing data is ever cached here.
var ChatContextClient *redis.Client

// InitRedis initializes the Redis client for chat context storage.
func InitRedis() {
	ChatContextClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatContextDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ChatContextClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (chat context): %v", err)
	}
}

// GetChatContextClient returns the Redis client for chat context storage.
func GetChatContextClient() *redis.Client {
	if ChatContextClient == nil {
		InitRedis()
	}
	return ChatContextClient
}
