package cache

import (
	"context"

	"github.com/isbleu/concept/internal/model"
)

// Nop is used when redis is disabled. Every read misses and every write is dropped.
type Nop struct{}

func (Nop) SetQuotes(context.Context, map[string][]model.Quote) error { return nil }

func (Nop) GetQuotes(context.Context, string) ([]model.Quote, error) { return nil, ErrCacheMiss }

func (Nop) SetMinuteSeries(context.Context, model.MinuteSeries) error { return nil }

func (Nop) GetMinuteSeries(context.Context, string) (model.MinuteSeries, error) {
	return model.MinuteSeries{}, ErrCacheMiss
}

func (Nop) SetDailySeries(context.Context, model.DailySeries) error { return nil }

func (Nop) GetDailySeries(context.Context, string) (model.DailySeries, error) {
	return model.DailySeries{}, ErrCacheMiss
}
