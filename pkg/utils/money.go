package utils

import "fmt"

// FormatCents renders a price in minor units as a two-decimal
// major-unit amount: 188 -> "1.88", 5 -> "0.05". Prices are
// non-negative by schema constraint.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
