package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of fractional digits money is displayed and stored with.
const MoneyPrecision = 2

var hundred = decimal.NewFromInt(100)

// FormatWithPrecision formats an amount with the given precision.
// Example: 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatMoney renders an amount with exactly two decimals, e.g. "160.00".
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}

// RoundMoney rounds half away from zero to two decimals.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

// NonNegative returns v, or zero when v is negative.
func NonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// PercentOf returns pct percent of base.
func PercentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// ParseMoney parses a remote price string. An empty string is zero.
func ParseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
