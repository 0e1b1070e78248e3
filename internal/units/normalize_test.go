package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToBasics(t *testing.T) {
	testCases := []struct {
		name     string
		qty      float64
		unit     string
		expected Normalized
	}{
		{name: "kg to grams", qty: 1.5, unit: "kg", expected: Normalized{Value: 1500, Base: BaseGrams}},
		{name: "grams stay grams", qty: 500, unit: "g", expected: Normalized{Value: 500, Base: BaseGrams}},
		{name: "liters to ml", qty: 2, unit: "litro", expected: Normalized{Value: 2000, Base: BaseMilliliters}},
		{name: "dl to ml", qty: 3, unit: "dl", expected: Normalized{Value: 300, Base: BaseMilliliters}},
		{name: "count unit", qty: 4, unit: "unidades", expected: Normalized{Value: 4, Base: BaseUnits}},
		{name: "unknown unit", qty: 2, unit: "manojo", expected: Normalized{Value: 2, Base: BaseUnits}},
		{name: "empty unit", qty: 7, unit: "", expected: Normalized{Value: 7, Base: BaseUnits}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeToBasics(tt.qty, tt.unit)
			assert.Equal(t, tt.expected.Base, got.Base)
			assert.InDelta(t, tt.expected.Value, got.Value, 1e-9)
		})
	}
}

func TestFormatNormalized(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		base     string
		expected string
	}{
		{name: "grams below threshold", value: 750, base: BaseGrams, expected: "750 g"},
		{name: "grams promoted to kg", value: 1500, base: BaseGrams, expected: "1,50 kg"},
		{name: "exactly one kg", value: 1000, base: BaseGrams, expected: "1 kg"},
		{name: "ml below thresholds", value: 80, base: BaseMilliliters, expected: "80 ml"},
		{name: "ml promoted to dl", value: 250, base: BaseMilliliters, expected: "2,50 dl"},
		{name: "ml promoted to liters", value: 3000, base: BaseMilliliters, expected: "3 l"},
		{name: "bare units", value: 6, base: BaseUnits, expected: "6 ud"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNormalized(tt.value, tt.base))
		})
	}
}

// Normalization followed by formatting must be re-parseable to the same
// normalized value: 1,5 kg -> 1500 g -> "1,50 kg" -> 1.5 kg.
func TestNormalizeFormatRoundTrip(t *testing.T) {
	n := NormalizeToBasics(1.5, "kg")
	assert.Equal(t, "1,50 kg", FormatNormalized(n.Value, n.Base))
	assert.InDelta(t, n.Value, ParseQuantity("1,50")*1000, 1e-9)

	n = NormalizeToBasics(0.25, "l")
	assert.Equal(t, "2,50 dl", FormatNormalized(n.Value, n.Base))
	assert.InDelta(t, n.Value, ParseQuantity("2,50")*100, 1e-9)
}
