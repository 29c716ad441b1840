package pix

import (
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmountLen is the EMV limit for the tag 54 value.
const maxAmountLen = 13

// FormatAmount renders amount with two decimals and a period separator.
// A zero amount renders as "0.00". It returns "" for nil, negative amounts
// and amounts longer than 13 characters, which omits tag 54.
func FormatAmount(amount *decimal.Decimal) string {
	if amount == nil || amount.IsNegative() {
		return ""
	}
	s := amount.RoundBank(2).StringFixed(2)
	if len(s) > maxAmountLen {
		return ""
	}
	return s
}

// ParseAmount accepts "90.9", "90,09" or "1.234,56" style input.
// It returns nil when raw is empty or not a number.
func ParseAmount(raw string) *decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
