package chart

import (
	"fmt"
	"math"
	"slices"

	"github.com/isbleu/concept/internal/model"
)

const (
	tickCount = 10

	// used when the series never leaves the previous close
	flatMaxChange = 1.0

	colorAbove  = "#ff4d4f"
	colorBelow  = "#22c55e"
	colorRef    = "#6b7280"
	colorCandle = "#ef4444"

	SeriesAbove     = "高于昨收"
	SeriesBelow     = "低于昨收"
	SeriesPrevClose = "昨收"
	SeriesKline     = "日K"
)

var minuteLabels = []string{"09:30", "10:00", "10:30", "11:00", "11:30", "13:00", "13:30", "14:00", "14:30", "15:00"}

// BuildMinuteOption describes an intraday line chart centered on the previous close.
// Samples at or above the previous close go to one series and samples below it to the other.
// A crossing inserts a point at the previous close into both series so the lines meet.
func BuildMinuteOption(s model.MinuteSeries) (model.ChartOption, error) {
	if len(s.Prices) == 0 || len(s.Prices) != len(s.Times) {
		return model.ChartOption{}, fmt.Errorf("%w: %d times, %d prices", ErrEmptySeries, len(s.Times), len(s.Prices))
	}

	prevClose := s.PrevClose
	if prevClose <= 0 {
		prevClose = s.Prices[0]
	}

	highest := slices.Max(s.Prices)
	if s.DayHigh != nil && *s.DayHigh > 0 {
		highest = *s.DayHigh
	}
	lowest := slices.Min(s.Prices)
	if s.DayLow != nil && *s.DayLow > 0 {
		lowest = *s.DayLow
	}

	maxChange := 0.0
	if prevClose > 0 {
		maxChange = math.Max(
			math.Abs((highest-prevClose)/prevClose*100),
			math.Abs((lowest-prevClose)/prevClose*100),
		)
	}
	if maxChange == 0 {
		maxChange = flatMaxChange
	}

	percentTicks := make([]float64, 0, tickCount+1)
	priceTicks := make([]float64, 0, tickCount+1)
	for i := tickCount; i >= 0; i-- {
		percent := -maxChange + (maxChange*2/tickCount)*float64(i)
		percentTicks = append(percentTicks, round2(percent))
		priceTicks = append(priceTicks, roundTo(prevClose*(1+percent/100), 4))
	}

	above, below := splitAtReference(s.Times, s.Prices, prevClose)

	reference := make([]float64, len(s.Prices))
	for i := range reference {
		reference[i] = prevClose
	}

	span := prevClose * maxChange / 100

	return model.ChartOption{
		Kind: "minute",
		XAxis: model.XAxis{
			Data:   s.Times,
			Labels: slices.Clone(minuteLabels),
		},
		YAxis: []model.YAxis{
			{
				Position: "left",
				Unit:     "price",
				Min:      prevClose - span,
				Max:      prevClose + span,
				Interval: span * 2 / tickCount,
				Ticks:    priceTicks,
			},
			{
				Position: "right",
				Unit:     "percent",
				Min:      -maxChange,
				Max:      maxChange,
				Interval: maxChange * 2 / tickCount,
				Ticks:    percentTicks,
			},
		},
		Series: []model.Series{
			{Name: SeriesAbove, Type: "line", Color: colorAbove, Points: above},
			{Name: SeriesBelow, Type: "line", Color: colorBelow, Points: below},
			{Name: SeriesPrevClose, Type: "line", Color: colorRef, Dashed: true, Values: reference},
		},
		Meta: model.ChartMeta{
			PrevClose:    prevClose,
			MaxChange:    roundTo(maxChange, 4),
			PercentTicks: percentTicks,
			PriceTicks:   priceTicks,
			Origin:       s.Origin,
		},
	}, nil
}

func splitAtReference(times []string, prices []float64, reference float64) (above, below []model.LinePoint) {
	above = make([]model.LinePoint, 0, len(prices))
	below = make([]model.LinePoint, 0, len(prices))

	lastAbove := false
	for i, price := range prices {
		label := times[i]
		isAbove := price >= reference

		if i > 0 && isAbove != lastAbove {
			above = append(above, valuePoint(label, reference))
			below = append(below, valuePoint(label, reference))
		}

		if isAbove {
			above = append(above, valuePoint(label, price))
			below = append(below, model.LinePoint{Label: label})
		} else {
			above = append(above, model.LinePoint{Label: label})
			below = append(below, valuePoint(label, price))
		}

		lastAbove = isAbove
	}

	return above, below
}

func valuePoint(label string, v float64) model.LinePoint {
	return model.LinePoint{Label: label, Value: &v}
}

// BuildDailyOption describes a candlestick chart over s without its first entry.
// Entry 0 only anchors the change percent of the first displayed day, so displayed
// index k is compared against full index k.
func BuildDailyOption(s model.DailySeries) (model.ChartOption, error) {
	if len(s.KlineData) != len(s.Dates) {
		return model.ChartOption{}, fmt.Errorf("%w: %d dates, %d candles", ErrEmptySeries, len(s.Dates), len(s.KlineData))
	}
	if len(s.KlineData) < 2 {
		return model.ChartOption{}, fmt.Errorf("%w: need an anchor day and at least one displayed day", ErrEmptySeries)
	}

	candles := s.KlineData[1:]
	dates := s.Dates[1:]

	labels := make([]string, 0, len(dates))
	changes := make([]float64, 0, len(dates))
	dateIndex := make(map[string]int, len(dates))
	lowest, highest := math.Inf(1), math.Inf(-1)

	for k, c := range candles {
		labels = append(labels, shortDate(dates[k]))
		dateIndex[dates[k]] = k + 1

		prev := s.KlineData[k].Close
		change := 0.0
		if prev != 0 {
			change = round2((c.Close - prev) / prev * 100)
		}
		changes = append(changes, change)

		lowest = math.Min(lowest, c.Low)
		highest = math.Max(highest, c.High)
	}

	interval := (highest - lowest) / tickCount
	if interval <= 0 {
		interval = math.Max(highest*0.01, minPrice)
	}

	return model.ChartOption{
		Kind: "daily",
		XAxis: model.XAxis{
			Data:   dates,
			Labels: labels,
		},
		YAxis: []model.YAxis{
			{
				Position: "left",
				Unit:     "price",
				Min:      lowest,
				Max:      highest,
				Interval: roundTo(interval, 4),
			},
		},
		Series: []model.Series{
			{Name: SeriesKline, Type: "candlestick", Color: colorCandle, DownColor: colorBelow, Candles: candles},
		},
		Meta: model.ChartMeta{
			DateIndex:      dateIndex,
			ChangePercents: changes,
			Origin:         s.Origin,
		},
	}, nil
}

// shortDate turns 2024-01-05 into 01-05.
func shortDate(date string) string {
	if len(date) < 10 {
		return date
	}
	return date[5:10]
}
