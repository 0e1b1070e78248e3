package units

import "math"

// Canonical base unit tokens. Every quantity is reduced to one of
// these before being summed across recipes.
const (
	BaseGrams       = "g"
	BaseMilliliters = "ml"
	BaseUnits       = "ud"
)

// Normalized is a quantity reduced to a canonical base unit.
type Normalized struct {
	Value float64 `json:"value"`
	Base  string  `json:"base"`
}

// NormalizeToBasics reduces any recognized unit to grams or
// milliliters; everything else, including genuinely unit-counted
// ingredients, becomes bare units ("ud") with the value untouched.
func NormalizeToBasics(qty float64, unit string) Normalized {
	if info, ok := lookup(unit); ok {
		switch info.dim {
		case Mass:
			return Normalized{Value: qty * info.factor, Base: BaseGrams}
		case Volume:
			return Normalized{Value: qty * info.factor, Base: BaseMilliliters}
		}
	}
	return Normalized{Value: qty, Base: BaseUnits}
}

// FormatNormalized renders a normalized value in the largest sensible
// human unit: kg from 1000 g, liters from 1000 ml, deciliters from
// 100 ml. Pure presentation; aggregation always happens in the base.
func FormatNormalized(value float64, base string) string {
	switch base {
	case BaseGrams:
		if math.Abs(value) >= 1000 {
			return FormatQuantity(value/1000) + " kg"
		}
		return FormatQuantity(value) + " g"
	case BaseMilliliters:
		if math.Abs(value) >= 1000 {
			return FormatQuantity(value/1000) + " l"
		}
		if math.Abs(value) >= 100 {
			return FormatQuantity(value/100) + " dl"
		}
		return FormatQuantity(value) + " ml"
	default:
		return FormatQuantity(value) + " " + BaseUnits
	}
}
