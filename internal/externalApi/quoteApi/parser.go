package quoteApi

import (
	"regexp"
	"strings"

	"github.com/isbleu/concept/internal/model"
	"github.com/shopspring/decimal"
)

var quotedPayload = regexp.MustCompile(`="([^"]+)"`)

var hundred = decimal.NewFromInt(100)

// Parse turns one upstream line into a Quote. It never fails: anything it cannot read
// becomes an error quote for code.
func (l Layout) Parse(raw, code, name string) model.Quote {
	m := quotedPayload.FindStringSubmatch(raw)
	if m == nil || m[1] == "" {
		return model.ErrorQuote(code, name)
	}

	fields := strings.Split(m[1], l.Delimiter)
	if len(fields) <= l.maxNumericIndex() {
		return model.ErrorQuote(code, name)
	}

	var (
		nums [7]decimal.Decimal
		err  error
	)
	for i, idx := range []int{l.Price, l.PreClose, l.Open, l.High, l.Low, l.Volume, l.Amount} {
		nums[i], err = parseNumber(fields[idx])
		if err != nil {
			return model.ErrorQuote(code, name)
		}
	}
	price, preClose, open, high, low, volume, amount := nums[0], nums[1], nums[2], nums[3], nums[4], nums[5], nums[6]

	if name == "" {
		name = strings.TrimSpace(fields[l.Name])
	}
	date := field(fields, l.Date)
	tm := field(fields, l.Time)

	q := model.Quote{
		Code:     code,
		Name:     name,
		Price:    price,
		PreClose: preClose,
		Open:     open,
		High:     high,
		Low:      low,
		Volume:   volume.IntPart() * volumeScale,
		Amount:   amount.Mul(decimal.NewFromInt(amountScale)),
		Status:   model.QuoteStatusNormal,
	}
	if date != "" && tm != "" {
		q.UpdateTime = date + " " + tm
	}

	if l.DetectSuspension && price.IsZero() && open.IsZero() && high.IsZero() && low.IsZero() {
		q.Status = model.QuoteStatusStopped
		q.Price = preClose
		q.Change = decimal.Zero
		q.ChangePercent = decimal.Zero
		return q
	}

	q.Change, q.ChangePercent = changeOf(price, preClose)
	if date == "" || tm == "" {
		q.Status = model.QuoteStatusClosed
	}

	return q
}

func (l Layout) maxNumericIndex() int {
	return max(l.Price, l.PreClose, l.Open, l.High, l.Low, l.Volume, l.Amount, l.Name)
}

// changeOf returns price-preClose and its percentage of preClose, both rounded to 2 places.
// The percentage is zero when preClose is not positive.
func changeOf(price, preClose decimal.Decimal) (change, percent decimal.Decimal) {
	diff := price.Sub(preClose)
	if preClose.IsPositive() {
		percent = diff.Mul(hundred).Div(preClose).Round(2)
	}
	return diff.Round(2), percent
}

func parseNumber(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func field(fields []string, idx int) string {
	if idx < 0 || idx >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[idx])
}
