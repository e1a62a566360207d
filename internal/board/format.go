package board

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders a string-encoded amount in the compact form the
// cards use: "$2.5M", "$150K", "$999". Absent or non-numeric input comes
// back as "$0"; rounding is half-up at the stated precision.
func FormatCurrency(value string) string {
	num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "$0"
	}
	switch {
	case num >= 1000000:
		return "$" + toFixed(num/1000000, 1) + "M"
	case num >= 1000:
		return "$" + toFixed(num/1000, 0) + "K"
	default:
		return "$" + toFixed(num, 0)
	}
}

// toFixed formats v with prec decimal places, rounding halves up.
func toFixed(v float64, prec int) string {
	pow := math.Pow(10, float64(prec))
	return strconv.FormatFloat(math.Floor(v*pow+0.5)/pow, 'f', prec, 64)
}

// Truncate caps s at max characters total, ending in a single ellipsis when
// anything was cut (max-1 content characters plus the ellipsis).
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
