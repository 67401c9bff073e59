package model

import "github.com/shopspring/decimal"

// Money fields are served as JSON numbers. Decoding accepts both numbers and strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type QuoteStatus string

const (
	QuoteStatusNormal  QuoteStatus = "normal"
	QuoteStatusStopped QuoteStatus = "stopped" // suspended, upstream fields are zero
	QuoteStatusClosed  QuoteStatus = "closed"  // after hours, no date/time upstream
	QuoteStatusError   QuoteStatus = "error"
)

// StockRequest identifies one instrument to quote. Market is optional.
type StockRequest struct {
	Code   string `json:"code"`
	Market string `json:"market,omitempty"`
	Name   string `json:"name,omitempty"`
}

type Quote struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	PreClose      decimal.Decimal `json:"preClose"`
	Open          decimal.Decimal `json:"open"`
	High          decimal.Decimal `json:"high"`
	Low           decimal.Decimal `json:"low"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	Volume        int64           `json:"volume"`
	Amount        decimal.Decimal `json:"amount"`
	UpdateTime    string          `json:"updateTime"`
	Status        QuoteStatus     `json:"status"`
}

// ErrorQuote is the placeholder returned when no source could supply data.
func ErrorQuote(code, name string) Quote {
	return Quote{
		Code:   code,
		Name:   name,
		Status: QuoteStatusError,
	}
}

func (q Quote) Direction() string {
	switch q.Change.Sign() {
	case 1:
		return "up"
	case -1:
		return "down"
	default:
		return "flat"
	}
}
