// Package money rounds and formats currency amounts for display.
//
// Pricing keeps full float64 precision; only presentation goes through here.
package money

import "github.com/shopspring/decimal"

// Round2 rounds v to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Format renders v as "$1234.50".
func Format(v float64) string {
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}

// Percent renders a discount percent without trailing zeros, e.g. "12.5%".
func Percent(v float64) string {
	return decimal.NewFromFloat(v).String() + "%"
}
