package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "comma decimal separator", input: "0,5", expected: 0.5},
		{name: "dot decimal separator", input: "0.5", expected: 0.5},
		{name: "integer", input: "500", expected: 500},
		{name: "surrounding whitespace", input: " 1,25 ", expected: 1.25},
		{name: "empty string", input: "", expected: 0},
		{name: "garbage text", input: "un puñado", expected: 0},
		{name: "explicit zero", input: "0", expected: 0},
		{name: "negative", input: "-2,5", expected: -2.5},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseQuantity(tt.input), 1e-9)
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	testCases := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "whole number has no decimals", input: 500, expected: "500"},
		{name: "two decimals above one", input: 1.5, expected: "1,50"},
		{name: "three decimals below one", input: 0.125, expected: "0,125"},
		{name: "rounded to two decimals", input: 12.345, expected: "12,35"},
		{name: "zero", input: 0, expected: "0"},
		{name: "NaN is empty", input: math.NaN(), expected: ""},
		{name: "infinity is empty", input: math.Inf(1), expected: ""},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatQuantity(tt.input))
		})
	}
}

// Formatting then re-parsing must land on the same value, modulo the
// two/three decimal rounding rule.
func TestParseFormatRoundTrip(t *testing.T) {
	values := []float64{0, 1, 0.5, 0.125, 2.25, 100, 999.75, 0.001}
	for _, v := range values {
		assert.InDelta(t, v, ParseQuantity(FormatQuantity(v)), 0.005, "value %v", v)
	}
}
