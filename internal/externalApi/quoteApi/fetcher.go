package quoteApi

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/isbleu/concept/config"
	"github.com/isbleu/concept/internal/externalApi"
	"github.com/isbleu/concept/internal/market"
	"github.com/isbleu/concept/internal/model"
	"github.com/isbleu/concept/utils"
	"golang.org/x/text/encoding/simplifiedchinese"
)

const failoverDelay = 500 * time.Millisecond

// Fetcher rotates over quote sources. The cursor is shared by all callers and is never reset.
type Fetcher struct {
	client  *resty.Client
	sources []Source
	cursor  atomic.Int64
}

func New(cfg *config.Config) *Fetcher {
	return NewWithSources(cfg,
		TencentSource(cfg.API.QuoteApi.TencentUrl),
		SinaSource(cfg.API.QuoteApi.SinaUrl),
	)
}

func NewWithSources(cfg *config.Config, sources ...Source) *Fetcher {
	if len(sources) == 0 {
		panic("quoteApi: no sources")
	}
	client := resty.New().
		SetDebug(cfg.API.Debug).
		SetTimeout(cfg.API.Timeout)
	return &Fetcher{client: client, sources: sources}
}

func (f *Fetcher) current() (int64, Source) {
	idx := f.cursor.Load() % int64(len(f.sources))
	return idx, f.sources[idx]
}

func (f *Fetcher) switchSource(from int64) {
	f.cursor.Store((from + 1) % int64(len(f.sources)))
}

// GetBatchQuotes returns one quote per request in request order. Upstream failures never
// surface: after every source failed the result is a list of error quotes.
func (f *Fetcher) GetBatchQuotes(ctx context.Context, requests []model.StockRequest) []model.Quote {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "quoteApi.GetBatchQuotes"

	if len(requests) == 0 {
		return []model.Quote{}
	}

	slog.Debug("GetBatchQuotes start", slog.String("rqID", rqID), slog.String("op", op), slog.Int("count", len(requests)))
	defer func() {
		slog.Debug("GetBatchQuotes finished", slog.String("rqID", rqID), slog.String("op", op))
	}()

	ctx = context.WithoutCancel(ctx)

	for attempt := 0; attempt < len(f.sources); attempt++ {
		idx, src := f.current()

		quotes, err := f.fetchBatch(ctx, src, requests)
		if err == nil {
			return quotes
		}

		slog.Warn("quote source failed",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("source", src.Name),
			slog.String("err", err.Error()),
		)
		f.switchSource(idx)
		if attempt < len(f.sources)-1 {
			time.Sleep(failoverDelay)
		}
	}

	slog.Warn("all quote sources failed, returning placeholders", slog.String("rqID", rqID), slog.String("op", op))

	res := make([]model.Quote, 0, len(requests))
	for _, r := range requests {
		res = append(res, model.ErrorQuote(r.Code, r.Name))
	}
	return res
}

// GetStockQuote runs the same failover loop for a single instrument.
func (f *Fetcher) GetStockQuote(ctx context.Context, code, mkt string) model.Quote {
	rqID := utils.GetRequestIDFromCtx(ctx)
	op := "quoteApi.GetStockQuote"

	slog.Debug("GetStockQuote start", slog.String("rqID", rqID), slog.String("op", op), slog.String("code", code))
	defer func() {
		slog.Debug("GetStockQuote finished", slog.String("rqID", rqID), slog.String("op", op), slog.String("code", code))
	}()

	ctx = context.WithoutCancel(ctx)
	request := []model.StockRequest{{Code: code, Market: mkt}}

	for attempt := 0; attempt < len(f.sources); attempt++ {
		idx, src := f.current()

		body, err := f.get(ctx, src, src.URL(request))
		if err == nil {
			return src.Parse(firstLine(body), code, "")
		}

		slog.Warn("quote source failed",
			slog.String("rqID", rqID),
			slog.String("op", op),
			slog.String("source", src.Name),
			slog.String("code", market.Format(code, mkt)),
			slog.String("err", err.Error()),
		)
		f.switchSource(idx)
		if attempt < len(f.sources)-1 {
			time.Sleep(failoverDelay)
		}
	}

	slog.Warn("all quote sources failed, returning placeholder", slog.String("rqID", rqID), slog.String("op", op), slog.String("code", code))

	return model.ErrorQuote(code, "")
}

func (f *Fetcher) fetchBatch(ctx context.Context, src Source, requests []model.StockRequest) ([]model.Quote, error) {
	body, err := f.get(ctx, src, src.URL(requests))
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(body), "\n")
	quotes := make([]model.Quote, 0, len(requests))
	for i, r := range requests {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		quotes = append(quotes, src.Parse(line, r.Code, r.Name))
	}

	return quotes, nil
}

func (f *Fetcher) get(ctx context.Context, src Source, url string) (string, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetHeaders(src.Headers).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", externalApi.ErrUpstreamUnavailable, src.Name, err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: %s: %d", externalApi.ErrUpstreamStatus, src.Name, resp.StatusCode())
	}

	return decodeBody(resp.Body(), src.GBK), nil
}

func decodeBody(body []byte, gbk bool) string {
	if !gbk {
		return string(body)
	}
	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

func firstLine(body string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(body), "\n")
	return line
}
