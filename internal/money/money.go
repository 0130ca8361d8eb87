// Package money formats amounts for display. The aggregation engine works
// in float64; rendering goes through decimal so two-digit rounding is
// exact regardless of what the sums accumulated.
package money

import "github.com/shopspring/decimal"

// FormatUSD renders an amount as $1,234.56.
func FormatUSD(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	s := d.StringFixed(2)
	whole, frac := s[:len(s)-3], s[len(s)-3:]
	out := groupThousands(whole) + frac

	if negative {
		return "-$" + out
	}
	return "$" + out
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b []byte
	lead := n % 3
	if lead > 0 {
		b = append(b, digits[:lead]...)
	}
	for i := lead; i < n; i += 3 {
		if len(b) > 0 {
			b = append(b, ',')
		}
		b = append(b, digits[i:i+3]...)
	}
	return string(b)
}

// TierText labels an amount by business tier, mirroring the badges shown
// next to the headline stat cards.
func TierText(amount float64) string {
	switch {
	case amount >= 1000000:
		return "Enterprise"
	case amount >= 100000:
		return "High Value"
	case amount >= 10000:
		return "Medium Value"
	default:
		return "Standard"
	}
}
