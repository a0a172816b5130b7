// Package money renders amounts and percentages for display.
package money

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// DefaultSymbol is used when no currency symbol is configured.
const DefaultSymbol = "$"

// Format renders v with two decimals, thousands separators and the given
// currency symbol, e.g. Format("$", 1234.5) == "$1,234.50".
func Format(symbol string, v float64) string {
	if v < 0 {
		return "-" + symbol + humanize.FormatFloat("#,###.##", -v)
	}
	return symbol + humanize.FormatFloat("#,###.##", v)
}

// Percent renders a slider fraction as a whole percentage.
// The fraction is truncated, so 1/6 is "16%".
func Percent(fraction float64) string {
	return fmt.Sprintf("%d%%", PercentOf(fraction))
}

// PercentOf converts a slider fraction to a whole percentage.
// The epsilon keeps values like 0.29 from truncating to 28.
func PercentOf(fraction float64) int {
	return int(fraction*100 + 1e-9)
}
