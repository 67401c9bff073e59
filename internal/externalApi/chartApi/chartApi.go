package chartApi

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/isbleu/concept/config"
	"github.com/isbleu/concept/internal/externalApi"
	"github.com/isbleu/concept/utils"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	// one extra day is fetched as the hidden anchor for the first change percent
	dailyDataLen = "31"
)

type ChartApi struct {
	client *resty.Client
	cfg    *config.Config
}

func New(cfg *config.Config) *ChartApi {
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout).
		SetHeader("User-Agent", userAgent)
	return &ChartApi{client: client, cfg: cfg}
}

// GetMinute returns the raw intraday payload for an exchange-prefixed code.
func (a *ChartApi) GetMinute(ctx context.Context, chartCode string) ([]byte, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ChartApi.GetMinute"

	slog.Debug("GetMinute start", slog.String("rqID", rqID), slog.String("op", op), slog.String("code", chartCode))

	resp, err := a.client.R().
		SetContext(context.WithoutCancel(ctx)).
		SetQueryParam("code", chartCode).
		Get(a.cfg.API.ChartApi.MinuteUrl)

	return a.handle(rqID, op, resp, err)
}

// GetDaily returns the raw daily k-line payload for an exchange-prefixed code.
func (a *ChartApi) GetDaily(ctx context.Context, chartCode string) ([]byte, error) {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "ChartApi.GetDaily"

	slog.Debug("GetDaily start", slog.String("rqID", rqID), slog.String("op", op), slog.String("code", chartCode))

	resp, err := a.client.R().
		SetContext(context.WithoutCancel(ctx)).
		SetHeader("Referer", "https://finance.sina.com.cn").
		SetQueryParams(map[string]string{
			"symbol":  chartCode,
			"scale":   "240",
			"ma":      "no",
			"datalen": dailyDataLen,
		}).
		Get(a.cfg.API.ChartApi.DailyUrl)

	return a.handle(rqID, op, resp, err)
}

func (a *ChartApi) handle(rqID, op string, resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		slog.Error("error while dialing chart api", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return nil, fmt.Errorf("%w: %w", externalApi.ErrUpstreamUnavailable, err)
	}
	if !resp.IsSuccess() {
		slog.Error("chart api returned bad status", slog.String("rqID", rqID), slog.String("op", op), slog.Int("status", resp.StatusCode()))
		return nil, fmt.Errorf("%w: %d", externalApi.ErrUpstreamStatus, resp.StatusCode())
	}

	slog.Debug("chart api request complete", slog.String("rqID", rqID), slog.String("op", op))

	return resp.Body(), nil
}
