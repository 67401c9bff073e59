package glmApi

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/isbleu/concept/internal/market"
	"github.com/isbleu/concept/internal/model"
	"github.com/tidwall/gjson"
)

var (
	fenceOpen   = regexp.MustCompile("(?i)```json\\s*")
	fenceAny    = regexp.MustCompile("```\\s*")
	stocksObj   = regexp.MustCompile(`\{[\s\S]*"stocks"[\s\S]*\}`)
	stocksArray = regexp.MustCompile(`\[\s*\{[\s\S]*\}\s*\]`)

	sixDigits = regexp.MustCompile(`^\d{6}$`)
	numeric   = regexp.MustCompile(`^[\d.,]+$`)
	hexLike   = regexp.MustCompile(`^[0-9a-fA-F.,]+$`)
	cjk       = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]`)

	excludedWords = []string{"价格", "指数", "代码", "公告", "资讯", "新闻", "有限"}

	validate = validator.New()
)

// ExtractStocks pulls the stock list out of free-form model output. It tries the whole
// content, then the first object mentioning "stocks", then the first array of objects.
// The first candidate holding a non-empty list decides the result.
func ExtractStocks(content string) []model.ConceptStock {
	cleaned := strings.TrimSpace(fenceAny.ReplaceAllString(fenceOpen.ReplaceAllString(content, ""), ""))
	if cleaned == "" {
		return []model.ConceptStock{}
	}

	candidates := []string{
		cleaned,
		stocksObj.FindString(cleaned),
		stocksArray.FindString(cleaned),
	}

	for _, candidate := range candidates {
		if candidate == "" || !gjson.Valid(candidate) {
			continue
		}

		parsed := gjson.Parse(candidate)
		var items []gjson.Result
		switch {
		case parsed.IsArray():
			items = parsed.Array()
		case parsed.Get("stocks").IsArray():
			items = parsed.Get("stocks").Array()
		}
		if len(items) == 0 {
			continue
		}

		return filterStocks(items)
	}

	return []model.ConceptStock{}
}

func filterStocks(items []gjson.Result) []model.ConceptStock {
	res := make([]model.ConceptStock, 0, len(items))
	for _, item := range items {
		code := strings.TrimSpace(item.Get("code").String())
		name := strings.TrimSpace(item.Get("name").String())
		if !IsValidStock(code, name) {
			continue
		}

		mkt := strings.ToUpper(strings.TrimSpace(item.Get("market").String()))
		if mkt != "SH" && mkt != "SZ" {
			mkt = strings.ToUpper(market.Prefix(code, ""))
		}

		stock := model.ConceptStock{
			Code:   code,
			Name:   name,
			Market: mkt,
			Reason: strings.TrimSpace(item.Get("reason").String()),
		}
		if validate.Struct(stock) != nil {
			continue
		}
		res = append(res, stock)
	}
	return res
}

// IsValidStock reports whether code and name look like an ordinary A-share listing.
// ST and delisting names are rejected along with anything that is not a Chinese name.
func IsValidStock(code, name string) bool {
	if code == "" || name == "" {
		return false
	}
	if !sixDigits.MatchString(code) || !strings.ContainsAny(code[:1], "0368") {
		return false
	}
	if strings.Contains(name, "ST") || strings.Contains(name, "退") || strings.Contains(name, "*") {
		return false
	}
	for _, w := range excludedWords {
		if strings.Contains(name, w) {
			return false
		}
	}

	length := utf8.RuneCountInString(name)
	if length < 2 || length > 7 {
		return false
	}
	if numeric.MatchString(name) {
		return false
	}
	if hexLike.MatchString(name) && length <= 6 {
		return false
	}

	return cjk.MatchString(name)
}
