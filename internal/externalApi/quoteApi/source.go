package quoteApi

import (
	"strings"

	"github.com/isbleu/concept/internal/market"
	"github.com/isbleu/concept/internal/model"
)

const (
	browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	volumeScale = 100   // lots -> shares
	amountScale = 10000 // ten-thousands -> currency units
)

// Layout describes where a source keeps each quote field.
type Layout struct {
	Delimiter string

	Name     int
	Price    int
	PreClose int
	Open     int
	High     int
	Low      int
	Volume   int
	Amount   int
	Date     int
	Time     int

	// DetectSuspension reports an all-zero price/open/high/low line as stopped.
	DetectSuspension bool
}

// Source is one upstream quote endpoint together with its wire conventions.
type Source struct {
	Name      string
	BaseURL   string
	ListParam string
	Headers   map[string]string
	GBK       bool
	Layout    Layout
}

// TencentSource reads the GBK, ~-delimited qt.gtimg.cn feed.
func TencentSource(baseURL string) Source {
	return Source{
		Name:      "tencent",
		BaseURL:   strings.TrimRight(baseURL, "/"),
		ListParam: "q",
		Headers: map[string]string{
			"User-Agent": browserUA,
			"Accept":     "*/*",
			"Referer":    "http://stockapp.finance.qq.com",
		},
		GBK: true,
		Layout: Layout{
			Delimiter: "~",
			Name:      1,
			Price:     3,
			PreClose:  4,
			Open:      5,
			High:      33,
			Low:       34,
			Volume:    36,
			Amount:    37,
			Date:      30,
			Time:      31,
		},
	}
}

// SinaSource reads the GBK, comma-delimited hq.sinajs.cn feed and detects suspended stocks.
func SinaSource(baseURL string) Source {
	return Source{
		Name:      "sina",
		BaseURL:   strings.TrimRight(baseURL, "/"),
		ListParam: "list",
		Headers: map[string]string{
			"User-Agent":      browserUA,
			"Accept":          "*/*",
			"Accept-Language": "zh-CN,zh;q=0.9",
			"Referer":         "http://finance.sina.com.cn",
		},
		GBK: true,
		Layout: Layout{
			Delimiter:        ",",
			Name:             0,
			Open:             1,
			PreClose:         2,
			Price:            3,
			High:             4,
			Low:              5,
			Volume:           8,
			Amount:           9,
			Date:             30,
			Time:             31,
			DetectSuspension: true,
		},
	}
}

// URL builds one combined request for all requested instruments.
func (s Source) URL(requests []model.StockRequest) string {
	codes := make([]string, 0, len(requests))
	for _, r := range requests {
		codes = append(codes, market.Format(r.Code, r.Market))
	}
	return s.BaseURL + "/" + s.ListParam + "=" + strings.Join(codes, ",")
}

func (s Source) Parse(raw, code, name string) model.Quote {
	return s.Layout.Parse(raw, code, name)
}
