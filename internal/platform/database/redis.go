package database

import (
	"context"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/config"
	"github.com/redis/go-redis/v9"
)

// RDB is the shared Redis client.
var RDB *redis.Client

// Ctx is the shared context for Redis operations.
var Ctx = context.Background()

// InitRedis connects to Redis using the loaded configuration.
func InitRedis(cfg config.RedisConfig) {
	RDB = redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		panic("unable to connect to Redis: " + err.Error())
	}
}
