package chart

import (
	"math"
	"math/rand"
	"time"

	"github.com/isbleu/concept/internal/model"
)

const (
	DefaultMinuteBase = 10.00
	DefaultDailyBase  = 20.00

	smoothWindow = 5 // samples on each side
	mockDays     = 30
	minPrice     = 0.01
)

// Generator produces placeholder series when upstream data is unavailable.
// Output is random and only satisfies the shape of the live series.
type Generator struct {
	random func() float64
	now    func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{random: rand.Float64, now: time.Now}
}

func NewGeneratorWith(random func() float64, now func() time.Time) *Generator {
	return &Generator{random: random, now: now}
}

// GenerateMockMinute walks one sample per trading minute around basePrice and smooths the path.
func (g *Generator) GenerateMockMinute(code string, basePrice float64) model.MinuteSeries {
	if basePrice <= 0 {
		basePrice = DefaultMinuteBase
	}

	prevClose := basePrice * (1 + (g.random()-0.5)*0.02)
	current := prevClose * (1 + (g.random()-0.5)*0.01)

	times := TradingMinutes()
	raw := make([]float64, 0, len(times))
	for range times {
		drift := (basePrice - current) * 0.002
		shock := (g.random() - 0.5) * basePrice * 0.002
		current += drift + shock
		current += (g.random() - 0.5) * basePrice * 0.0005
		raw = append(raw, current)
	}

	return model.MinuteSeries{
		Code:      code,
		Times:     times,
		Prices:    smooth(raw, smoothWindow),
		PrevClose: round2(prevClose),
		Origin:    model.OriginSynthetic,
	}
}

// GenerateMockDaily emits one candle per weekday over the last 30 calendar days, oldest first.
func (g *Generator) GenerateMockDaily(code string, basePrice float64) model.DailySeries {
	if basePrice <= 0 {
		basePrice = DefaultDailyBase
	}

	series := model.DailySeries{Code: code, Origin: model.OriginSynthetic}
	today := g.now()
	spread := basePrice * 0.05

	for i := mockDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		open := basePrice + (g.random()-0.5)*spread*2
		closePrice := basePrice + (g.random()-0.5)*spread*2
		low := math.Min(open, closePrice) - g.random()*spread*0.3
		high := math.Max(open, closePrice) + g.random()*spread*0.3

		series.Dates = append(series.Dates, day.Format(time.DateOnly))
		series.KlineData = append(series.KlineData, model.Candle{
			Open:   clampPrice(round2(open)),
			Close:  clampPrice(round2(closePrice)),
			Low:    clampPrice(round2(low)),
			High:   clampPrice(round2(high)),
			Volume: int64(g.random()*1_000_000) + 100_000,
		})
	}

	return series
}

// TradingMinutes lists HH:MM for 09:30-11:30 and 13:00-15:00, both ends included.
func TradingMinutes() []string {
	res := make([]string, 0, 242)
	for _, session := range [][2]int{{9*60 + 30, 11*60 + 30}, {13 * 60, 15 * 60}} {
		for m := session[0]; m <= session[1]; m++ {
			res = append(res, formatMinute(m))
		}
	}
	return res
}

func formatMinute(m int) string {
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format("15:04")
}

// smooth applies a centered moving average clamped at the series ends.
func smooth(values []float64, window int) []float64 {
	res := make([]float64, len(values))
	for i := range values {
		lo, hi := max(0, i-window), min(len(values)-1, i+window)
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += values[j]
		}
		res[i] = clampPrice(round2(sum / float64(hi-lo+1)))
	}
	return res
}

func clampPrice(v float64) float64 {
	return math.Max(v, minPrice)
}

func round2(v float64) float64 {
	return roundTo(v, 2)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
