package model

import (
	"encoding/json"
	"fmt"
)

// SeriesOrigin tells whether a series came from upstream or was generated.
type SeriesOrigin string

const (
	OriginLive      SeriesOrigin = "live"
	OriginSynthetic SeriesOrigin = "synthetic"
)

type MinuteSeries struct {
	Code      string       `json:"code"`
	Times     []string     `json:"times"`
	Prices    []float64    `json:"prices"`
	PrevClose float64      `json:"prevClose"`
	DayHigh   *float64     `json:"dayHigh,omitempty"`
	DayLow    *float64     `json:"dayLow,omitempty"`
	Origin    SeriesOrigin `json:"origin"`
}

// Candle is encoded as [open, close, low, high, volume].
type Candle struct {
	Open   float64
	Close  float64
	Low    float64
	High   float64
	Volume int64
}

func (c Candle) MarshalJSON() ([]byte, error) {
	return json.Marshal([5]any{c.Open, c.Close, c.Low, c.High, c.Volume})
}

func (c *Candle) UnmarshalJSON(b []byte) error {
	var raw []float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 5 {
		return fmt.Errorf("candle: want 5 values, got %d", len(raw))
	}
	c.Open, c.Close, c.Low, c.High, c.Volume = raw[0], raw[1], raw[2], raw[3], int64(raw[4])
	return nil
}

type DailySeries struct {
	Code      string       `json:"code"`
	Dates     []string     `json:"dates"`
	KlineData []Candle     `json:"klineData"`
	Origin    SeriesOrigin `json:"origin"`
}

// ChartOption is a renderer-agnostic chart description.
type ChartOption struct {
	Kind   string    `json:"kind"`
	XAxis  XAxis     `json:"xAxis"`
	YAxis  []YAxis   `json:"yAxis"`
	Series []Series  `json:"series"`
	Meta   ChartMeta `json:"meta"`
}

type XAxis struct {
	Data []string `json:"data"`
	// Labels holds the visible axis labels.
	Labels []string `json:"labels,omitempty"`
}

type YAxis struct {
	Position string    `json:"position"`
	Unit     string    `json:"unit"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Interval float64   `json:"interval"`
	Ticks    []float64 `json:"ticks,omitempty"`
}

type Series struct {
	Name      string      `json:"name,omitempty"`
	Type      string      `json:"type"`
	Color     string      `json:"color,omitempty"`
	DownColor string      `json:"downColor,omitempty"`
	Dashed    bool        `json:"dashed,omitempty"`
	Points    []LinePoint `json:"points,omitempty"`
	Values    []float64   `json:"values,omitempty"`
	Candles   []Candle    `json:"candles,omitempty"`
}

// LinePoint is encoded as [label, value] where value may be null.
type LinePoint struct {
	Label string
	Value *float64
}

func (p LinePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Label, p.Value})
}

type ChartMeta struct {
	PrevClose    float64   `json:"prevClose,omitempty"`
	MaxChange    float64   `json:"maxChange,omitempty"`
	PercentTicks []float64 `json:"percentTicks,omitempty"`
	PriceTicks   []float64 `json:"priceTicks,omitempty"`
	// DateIndex maps a displayed date to its index in the full daily series.
	DateIndex map[string]int `json:"dateIndex,omitempty"`
	// ChangePercents holds the tooltip change per displayed index.
	ChangePercents []float64    `json:"changePercents,omitempty"`
	Origin         SeriesOrigin `json:"origin"`
}

type Chart[T any] struct {
	Series T           `json:"series"`
	Option ChartOption `json:"option"`
}
