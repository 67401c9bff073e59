// Package chart turns upstream time series into canonical series and chart descriptions.
package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/isbleu/concept/internal/model"
	"github.com/tidwall/gjson"
)

// ParseMinute reads the intraday payload keyed by chartCode.
func ParseMinute(raw []byte, chartCode string) (model.MinuteSeries, error) {
	if !gjson.ValidBytes(raw) {
		return model.MinuteSeries{}, fmt.Errorf("%w: invalid json", ErrUpstreamFormat)
	}

	node := gjson.GetBytes(raw, "data."+gjson.Escape(chartCode))
	if !node.Exists() {
		return model.MinuteSeries{}, fmt.Errorf("%w: no data for %s", ErrUpstreamFormat, chartCode)
	}

	bars := node.Get("data.data")
	if !bars.IsArray() {
		return model.MinuteSeries{}, fmt.Errorf("%w: no minute bars", ErrUpstreamFormat)
	}

	series := model.MinuteSeries{Code: chartCode, Origin: model.OriginLive}

	// snapshot offsets: 4 previous close, 33 day high, 34 day low
	snapshot := node.Get("qt." + gjson.Escape(chartCode)).Array()
	switch {
	case len(snapshot) > 34:
		series.PrevClose = positive(snapshot[4].String())
		series.DayHigh = positivePtr(snapshot[33].String())
		series.DayLow = positivePtr(snapshot[34].String())
	case len(snapshot) > 4:
		series.PrevClose = positive(snapshot[4].String())
	}
	if series.PrevClose <= 0 {
		return model.MinuteSeries{}, fmt.Errorf("%w: no previous close", ErrNoValidSamples)
	}

	for _, rec := range bars.Array() {
		parts := strings.Fields(rec.String())
		if len(parts) < 2 || len(parts[0]) < 4 {
			continue
		}
		price, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		series.Times = append(series.Times, parts[0][:2]+":"+parts[0][2:4])
		series.Prices = append(series.Prices, round2(price))
	}

	if len(series.Times) == 0 {
		return model.MinuteSeries{}, fmt.Errorf("%w: no minute records", ErrNoValidSamples)
	}

	return series, nil
}

// ParseDaily reads a k-line array of {day, open, high, low, close, volume} records.
func ParseDaily(raw []byte, code string) (model.DailySeries, error) {
	if !gjson.ValidBytes(raw) {
		return model.DailySeries{}, fmt.Errorf("%w: invalid json", ErrUpstreamFormat)
	}

	root := gjson.ParseBytes(raw)
	if !root.IsArray() || len(root.Array()) == 0 {
		return model.DailySeries{}, fmt.Errorf("%w: expected non-empty array", ErrUpstreamFormat)
	}

	series := model.DailySeries{Code: code, Origin: model.OriginLive}
	for _, rec := range root.Array() {
		day := rec.Get("day").String()
		open, okOpen := number(rec.Get("open"))
		high, okHigh := number(rec.Get("high"))
		low, okLow := number(rec.Get("low"))
		closePrice, okClose := number(rec.Get("close"))
		if day == "" || !okOpen || !okHigh || !okLow || !okClose {
			continue
		}

		volume, _ := strconv.ParseFloat(strings.TrimSpace(rec.Get("volume").String()), 64)

		series.Dates = append(series.Dates, day)
		series.KlineData = append(series.KlineData, model.Candle{
			Open:   open,
			Close:  closePrice,
			Low:    low,
			High:   high,
			Volume: int64(volume),
		})
	}

	if len(series.Dates) == 0 {
		return model.DailySeries{}, fmt.Errorf("%w: no valid k-line records", ErrNoValidSamples)
	}

	return series, nil
}

// number accepts a non-zero numeric value given either as a JSON number or a string.
func number(r gjson.Result) (float64, bool) {
	if !r.Exists() {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(r.String()), 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return v, true
}

func positive(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

func positivePtr(s string) *float64 {
	v := positive(s)
	if v == 0 {
		return nil
	}
	return &v
}
