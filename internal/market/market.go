// Package market derives exchange prefixes for A-share codes.
package market

import "strings"

const (
	Shanghai = "sh"
	Shenzhen = "sz"
)

// Prefix returns the exchange prefix for code. An explicit market wins and is lowercased.
// Otherwise codes starting with 6 or 8 are Shanghai and everything else is Shenzhen.
func Prefix(code, market string) string {
	if market != "" {
		return strings.ToLower(market)
	}
	if code != "" && (code[0] == '6' || code[0] == '8') {
		return Shanghai
	}
	return Shenzhen
}

// Format returns code with its exchange prefix, e.g. sh600519.
func Format(code, market string) string {
	return Prefix(code, market) + code
}

// ChartCode formats code for the chart endpoints. Codes that already carry a prefix pass through.
func ChartCode(code string) string {
	lower := strings.ToLower(code)
	if strings.HasPrefix(lower, Shanghai) || strings.HasPrefix(lower, Shenzhen) {
		return lower
	}
	return Format(code, "")
}

// Bare strips a sh/sz prefix if present.
func Bare(code string) string {
	lower := strings.ToLower(code)
	if strings.HasPrefix(lower, Shanghai) || strings.HasPrefix(lower, Shenzhen) {
		return code[2:]
	}
	return code
}
