package data

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"github.com/isbleu/concept/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns a client for the quote and chart cache. It panics when redis stays unreachable.
func NewRedisClient(ctx context.Context, cfg *config.Config) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Redis.Host, strconv.Itoa(cfg.Redis.Port)),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	err := connectWithRetry(ctx, "redis", connAttempts, connDelay, func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	if err != nil {
		slog.Error("redis unavailable", slog.String("err", err.Error()))
		_ = rdb.Close()
		panic(err)
	}

	return rdb
}
