package units

import "strings"

// Dimension classifies a unit token. Anything outside the mass and
// volume tables (unidad, manojo, cs, cp, free text) counts as Count.
type Dimension int

const (
	Count Dimension = iota
	Mass
	Volume
)

type unitInfo struct {
	dim    Dimension
	factor float64 // multiplier to the dimension's base unit (g or ml)
}

// unitTable maps lowercase unit tokens to their dimension and base
// factor. Adding a synonym is a one-line edit here.
var unitTable = map[string]unitInfo{
	"g":      {Mass, 1},
	"kg":     {Mass, 1000},
	"ml":     {Volume, 1},
	"cl":     {Volume, 10},
	"dl":     {Volume, 100},
	"l":      {Volume, 1000},
	"litro":  {Volume, 1000},
	"litros": {Volume, 1000},
}

func lookup(unit string) (unitInfo, bool) {
	info, ok := unitTable[strings.ToLower(strings.TrimSpace(unit))]
	return info, ok
}

// DimensionOf returns the dimension of a unit token, case-insensitive.
func DimensionOf(unit string) Dimension {
	if info, ok := lookup(unit); ok {
		return info.dim
	}
	return Count
}

// IsConvertible reports whether a quantity can be converted between the
// two units, i.e. both belong to the same mass or volume group. Count
// units are convertible to nothing, not even each other.
func IsConvertible(from, to string) bool {
	a, aok := lookup(from)
	b, bok := lookup(to)
	return aok && bok && a.dim == b.dim
}

// Convert converts qty from one unit to another within the same
// dimension. Identical or empty units return qty unchanged.
//
// Incompatible pairs are a silent no-op, by policy: recipe data in the
// wild routinely holds non-convertible units ("manojo" priced per
// bunch), so converting e.g. "manojo" to "kg" returns qty as-is rather
// than failing. Callers that care must check IsConvertible first.
func Convert(qty float64, from, to string) float64 {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return qty
	}
	if strings.EqualFold(strings.TrimSpace(from), strings.TrimSpace(to)) {
		return qty
	}
	if !IsConvertible(from, to) {
		return qty
	}
	a, _ := lookup(from)
	b, _ := lookup(to)
	return qty * a.factor / b.factor
}
