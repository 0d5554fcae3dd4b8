package config

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the cache client. Redis is optional: when it is
// unreachable the service runs without a cache, so failures return nil
// rather than an error.
func ConnectRedis(cfg *Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		client.Close()
		return nil
	}

	return client
}
