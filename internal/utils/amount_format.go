package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmountWithCommas renders an amount with thousands separators and at
// most two decimal places. Example: 1234567.891 returns "1,234,567.89".
func FormatAmountWithCommas(amount decimal.Decimal) string {
	s := amount.Round(2).String()

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)
	return b.String()
}

// ParseFormattedAmount parses a user-entered amount that may contain
// thousands separators. Returns decimal.Zero for unparseable input.
func ParseFormattedAmount(value string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
