package database

import (
	"context"
	"log/slog"

	"swappochat/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the cache connection. A nil client is returned when Redis
// is unreachable so callers can keep serving without the cache.
func ConnectRedis(cfg *config.Config, logger *slog.Logger) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("Invalid REDIS_URL, statistics caching disabled", "error", err)
		return nil
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("Failed to connect to Redis, statistics caching disabled", "error", err)
		return nil
	}

	logger.Info("Connected to Redis successfully")
	return rdb
}
