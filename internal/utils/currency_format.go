package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places billing amounts are shown with.
const MoneyPrecision = 2

// FormatMoney formats an amount with MoneyPrecision places and thousands separators.
// Example: 1234567.891 returns "1,234,567.89"
// Example: -50 returns "-50.00"
func FormatMoney(amount decimal.Decimal) string {
	s := amount.StringFixed(MoneyPrecision)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + frac
}
