package chartService

//go:generate mockgen -source=chartService.go -destination=mocks_test.go -package=chartService

import (
	"context"
	"log/slog"

	"github.com/isbleu/concept/internal/chart"
	"github.com/isbleu/concept/internal/market"
	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/utils"
)

type ChartApi interface {
	GetMinute(ctx context.Context, chartCode string) ([]byte, error)
	GetDaily(ctx context.Context, chartCode string) ([]byte, error)
}

type ChartCache interface {
	GetMinuteSeries(ctx context.Context, chartCode string) (model.MinuteSeries, error)
	SetMinuteSeries(ctx context.Context, s model.MinuteSeries) error
	GetDailySeries(ctx context.Context, chartCode string) (model.DailySeries, error)
	SetDailySeries(ctx context.Context, s model.DailySeries) error
}

// ChartService serves chart data that is live when possible and synthetic otherwise.
// None of its operations fail.
type ChartService struct {
	api       ChartApi
	cache     ChartCache
	generator *chart.Generator
}

func New(api ChartApi, cache ChartCache, generator *chart.Generator) *ChartService {
	return &ChartService{api: api, cache: cache, generator: generator}
}

func (s *ChartService) Minute(ctx context.Context, code string) model.Chart[model.MinuteSeries] {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ChartService.Minute"
	chartCode := market.ChartCode(code)

	slog.Debug("Minute start", slog.String("rqID", rqID), slog.String("op", op), slog.String("code", chartCode))

	series, cached, err := s.liveMinute(ctx, chartCode)
	if err == nil {
		option, buildErr := chart.BuildMinuteOption(series)
		if buildErr == nil {
			if !cached {
				if err = s.cache.SetMinuteSeries(ctx, series); err != nil {
					slog.Warn("can't cache minute series", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
				}
			}
			return model.Chart[model.MinuteSeries]{Series: series, Option: option}
		}
		err = buildErr
	}

	slog.Warn("live minute data unavailable, using synthetic series", slog.String("rqID", rqID), slog.String("op", op), slog.String("code", chartCode), slog.String("err", err.Error()))

	series = s.generator.GenerateMockMinute(chartCode, chart.DefaultMinuteBase)
	option, _ := chart.BuildMinuteOption(series)

	return model.Chart[model.MinuteSeries]{Series: series, Option: option}
}

func (s *ChartService) Daily(ctx context.Context, code string) model.Chart[model.DailySeries] {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ChartService.Daily"
	chartCode := market.ChartCode(code)

	slog.Debug("Daily start", slog.String("rqID", rqID), slog.String("op", op), slog.String("code", chartCode))

	series, cached, err := s.liveDaily(ctx, chartCode)
	if err == nil {
		option, buildErr := chart.BuildDailyOption(series)
		if buildErr == nil {
			if !cached {
				if err = s.cache.SetDailySeries(ctx, series); err != nil {
					slog.Warn("can't cache daily series", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
				}
			}
			return model.Chart[model.DailySeries]{Series: series, Option: option}
		}
		err = buildErr
	}

	slog.Warn("live daily data unavailable, using synthetic series", slog.String("rqID", rqID), slog.String("op", op), slog.String("code", chartCode), slog.String("err", err.Error()))

	series = s.generator.GenerateMockDaily(chartCode, chart.DefaultDailyBase)
	option, _ := chart.BuildDailyOption(series)

	return model.Chart[model.DailySeries]{Series: series, Option: option}
}

// liveMinute reports whether the series came from the cache.
func (s *ChartService) liveMinute(ctx context.Context, chartCode string) (model.MinuteSeries, bool, error) {
	if cached, err := s.cache.GetMinuteSeries(ctx, chartCode); err == nil {
		return cached, true, nil
	}

	raw, err := s.api.GetMinute(ctx, chartCode)
	if err != nil {
		return model.MinuteSeries{}, false, err
	}

	series, err := chart.ParseMinute(raw, chartCode)
	return series, false, err
}

func (s *ChartService) liveDaily(ctx context.Context, chartCode string) (model.DailySeries, bool, error) {
	if cached, err := s.cache.GetDailySeries(ctx, chartCode); err == nil {
		return cached, true, nil
	}

	raw, err := s.api.GetDaily(ctx, chartCode)
	if err != nil {
		return model.DailySeries{}, false, err
	}

	series, err := chart.ParseDaily(raw, chartCode)
	return series, false, err
}
