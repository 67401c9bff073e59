package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/isbleu/concept/config"
	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/utils"
	"github.com/redis/go-redis/v9"
)

const (
	quotesPrefix = "quotes:"
	minutePrefix = "chart:minute:"
	dailyPrefix  = "chart:daily:"
)

type RedisCache struct {
	redis *redis.Client
	cfg   *config.Config
}

func NewRedisCache(redisClient *redis.Client, cfg *config.Config) *RedisCache {
	return &RedisCache{redis: redisClient, cfg: cfg}
}

// SetQuotes stores the quotes of several concepts in one pipeline.
func (r *RedisCache) SetQuotes(ctx context.Context, quotes map[string][]model.Quote) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "RedisCache.SetQuotes"
	slog.Debug("SetQuotes start", slog.String("rqID", rqID), slog.String("op", op), slog.Int("concepts", len(quotes)))

	pipe := r.redis.Pipeline()
	for conceptID, q := range quotes {
		quotesJson, err := json.Marshal(q)
		if err != nil {
			slog.Error(
				"can't marshall quotes in SetQuotes",
				slog.String("rqID", rqID),
				slog.String("op", op),
				slog.String("err", err.Error()),
				slog.String("conceptID", conceptID),
			)
			return fmt.Errorf("marshal quotes: %w", err)
		}

		pipe.Set(ctx, quotesPrefix+conceptID, quotesJson, r.cfg.Cache.QuotesExpiration)
	}

	_, err := pipe.Exec(ctx)
	if err != nil {
		slog.Error("failed on pipe.Exec", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	slog.Debug("SetQuotes completed", slog.String("rqID", rqID), slog.String("op", op))

	return nil
}

func (r *RedisCache) GetQuotes(ctx context.Context, conceptID string) ([]model.Quote, error) {
	var res []model.Quote
	if err := r.get(ctx, "RedisCache.GetQuotes", quotesPrefix+conceptID, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *RedisCache) SetMinuteSeries(ctx context.Context, s model.MinuteSeries) error {
	return r.set(ctx, "RedisCache.SetMinuteSeries", minutePrefix+s.Code, s, r.cfg.Cache.ChartsExpiration)
}

func (r *RedisCache) GetMinuteSeries(ctx context.Context, chartCode string) (model.MinuteSeries, error) {
	var res model.MinuteSeries
	err := r.get(ctx, "RedisCache.GetMinuteSeries", minutePrefix+chartCode, &res)
	return res, err
}

func (r *RedisCache) SetDailySeries(ctx context.Context, s model.DailySeries) error {
	return r.set(ctx, "RedisCache.SetDailySeries", dailyPrefix+s.Code, s, r.cfg.Cache.ChartsExpiration)
}

func (r *RedisCache) GetDailySeries(ctx context.Context, chartCode string) (model.DailySeries, error) {
	var res model.DailySeries
	err := r.get(ctx, "RedisCache.GetDailySeries", dailyPrefix+chartCode, &res)
	return res, err
}

func (r *RedisCache) set(ctx context.Context, op, key string, v any, ttl time.Duration) error {
	rqID := utils.GetRequestIDFromCtx(ctx)

	payload, err := json.Marshal(v)
	if err != nil {
		slog.Error("can't marshall value", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	if err = r.redis.Set(ctx, key, payload, ttl).Err(); err != nil {
		slog.Error("failed on redis.Set", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	return nil
}

func (r *RedisCache) get(ctx context.Context, op, key string, dst any) error {
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("get start", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key))

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return err
	}

	err = json.Unmarshal([]byte(res), dst)
	if err != nil {
		slog.Error(
			"can't unmarshall cached value",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("err", err.Error()),
			slog.String("resultFromRedis", res),
		)
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}

	return nil
}
