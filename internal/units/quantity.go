// Package units implements the measurement layer of the recipe engine:
// locale-tolerant quantity parsing and formatting, dimension-aware unit
// conversion, and normalization to the three canonical bases (grams,
// milliliters, bare units) used for shopping-list aggregation.
package units

import (
	"math"
	"strconv"
	"strings"
)

// ParseQuantity parses a free-form quantity string using either comma
// or dot as the decimal separator. Parsing never fails: empty or
// unparseable input yields 0, so callers must treat zero as a degraded
// value and not necessarily "the user typed zero".
func ParseQuantity(input string) float64 {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0
	}
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// FormatQuantity renders a value with comma as the decimal separator.
// Whole numbers carry no decimal part; otherwise two decimals, or three
// when the magnitude is below 1 to keep small quantities like "0,125"
// exact. NaN and infinities render as the empty string.
func FormatQuantity(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	prec := 2
	if math.Abs(v) < 1 {
		prec = 3
	}
	return strings.Replace(strconv.FormatFloat(v, 'f', prec, 64), ".", ",", 1)
}
