// Package costing keeps recipe costs synchronized with the shared
// product catalog: per-line cost calculation, price rebasing across
// unit changes, and the roll-up of ingredient costs into recipe totals.
package costing

import (
	"math"
	"strings"

	"github.com/lmoralesv/gin-recetario-api/internal/models"
	"github.com/lmoralesv/gin-recetario-api/internal/units"
)

// LineCost returns quantity × pricePerUnit. The price must already be
// denominated in the quantity's unit. Pure: a zero price or NaN
// quantity yields 0.
func LineCost(quantity, pricePerUnit float64) float64 {
	if pricePerUnit == 0 || math.IsNaN(quantity) {
		return 0
	}
	return quantity * pricePerUnit
}

// LineCostString is LineCost over a raw quantity string, parsed with
// the fail-soft quantity parser first.
func LineCostString(quantity string, pricePerUnit float64) float64 {
	return LineCost(units.ParseQuantity(quantity), pricePerUnit)
}

// CatalogIndex is a product catalog snapshot keyed by uppercased
// product name. It is built once per sync and passed in explicitly;
// the costing functions never read ambient state.
type CatalogIndex map[string]models.Product

// NewCatalogIndex builds an index from a catalog snapshot. Later
// duplicates of a name win.
func NewCatalogIndex(products []models.Product) CatalogIndex {
	idx := make(CatalogIndex, len(products))
	for _, p := range products {
		idx[strings.ToUpper(strings.TrimSpace(p.Name))] = p
	}
	return idx
}

// Lookup resolves an ingredient name case-insensitively.
func (idx CatalogIndex) Lookup(name string) (models.Product, bool) {
	p, ok := idx[strings.ToUpper(strings.TrimSpace(name))]
	return p, ok
}

// SyncRecipe refreshes every ingredient of every sub-recipe from the
// catalog and recomputes the recipe total. For a matched product the
// ingredient takes the product's allergens and family, and its price is
// the product price converted into the ingredient's current unit. An
// ingredient without a catalog match keeps its last-known price and
// allergens; stale data is not an error.
//
// The sync is idempotent: running it twice on unchanged input produces
// identical totals.
func SyncRecipe(recipe *models.Recipe, catalog CatalogIndex) {
	for si := range recipe.SubRecipes {
		sub := &recipe.SubRecipes[si]
		for ii := range sub.Ingredients {
			ing := &sub.Ingredients[ii]
			if p, ok := catalog.Lookup(ing.Name); ok {
				// One product unit expressed in the ingredient's unit
				// gives the rebasing factor, so quantity × price stays
				// the value the catalog dictates.
				ing.PricePerUnit = p.PricePerUnit * units.Convert(1, ing.Unit, p.Unit)
				ing.Allergens = p.Allergens
				ing.Category = p.Family
			}
			ing.Cost = LineCostString(ing.Quantity, ing.PricePerUnit)
		}
	}
	recipe.TotalCost = TotalCost(recipe)
}

// TotalCost sums the cached ingredient costs across all sub-recipes.
func TotalCost(recipe *models.Recipe) float64 {
	var total float64
	for _, sub := range recipe.SubRecipes {
		for _, ing := range sub.Ingredients {
			total += ing.Cost
		}
	}
	return total
}

// ChangeIngredientUnit rewrites an ingredient in a new unit, scaling
// the displayed quantity and inversely rebasing the per-unit price so
// the line cost is invariant: 1 kg at 10/kg becomes 1000 g at 0.01/g.
// For units that are not convertible the quantity and price are left
// numerically unchanged and only the unit label switches.
func ChangeIngredientUnit(ing *models.Ingredient, newUnit string) {
	oldUnit := ing.Unit
	qty := units.ParseQuantity(ing.Quantity)

	ing.Quantity = units.FormatQuantity(units.Convert(qty, oldUnit, newUnit))
	if units.IsConvertible(oldUnit, newUnit) {
		ing.PricePerUnit = ing.PricePerUnit * units.Convert(1, newUnit, oldUnit)
	}
	ing.Unit = newUnit
	ing.Cost = LineCostString(ing.Quantity, ing.PricePerUnit)
}
