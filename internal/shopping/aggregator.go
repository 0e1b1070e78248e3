// Package shopping aggregates the ingredient demand of a menu plan
// into a single purchasing document: per-reference portion scaling,
// per-ingredient overrides and exclusions, hand-added extras, and
// accumulation in canonical base units grouped by product family.
package shopping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lmoralesv/gin-recetario-api/internal/models"
	"github.com/lmoralesv/gin-recetario-api/internal/units"
)

// DefaultFamily collects ingredients that carry no category.
const DefaultFamily = "VARIOS"

// AggregatedItem is the total demand for one ingredient name, in its
// canonical base unit. Display carries the human rendering ("1,50 kg")
// so clients never reimplement the unit thresholds.
type AggregatedItem struct {
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
	Base    string  `json:"base"`
	Display string  `json:"display"`
}

// FamilySection groups aggregated items under one ordering family.
type FamilySection struct {
	Family string           `json:"family"`
	Items  []AggregatedItem `json:"items"`
}

// ShoppingList is the aggregation result. Active holds what must be
// ordered, grouped by family; Excluded keeps suppressed ingredients
// visible with their full aggregated quantity so they can be brought
// back. Both partitions are sorted alphabetically, families first,
// names within: callers may rely on that ordering.
type ShoppingList struct {
	Active   []FamilySection  `json:"active"`
	Excluded []AggregatedItem `json:"excluded"`
	Warnings []string         `json:"warnings,omitempty"`
}

type bucket struct {
	total float64
	base  string
}

func newItem(name string, b *bucket) AggregatedItem {
	return AggregatedItem{
		Name:    name,
		Total:   b.total,
		Base:    b.base,
		Display: units.FormatNormalized(b.total, b.base),
	}
}

type aggregator struct {
	active   map[string]map[string]*bucket
	excluded map[string]*bucket
	omit     map[string]bool
	warnings []string
}

func newAggregator(excludedNames []string) *aggregator {
	omit := make(map[string]bool, len(excludedNames))
	for _, name := range excludedNames {
		omit[strings.ToUpper(strings.TrimSpace(name))] = true
	}
	return &aggregator{
		active:   make(map[string]map[string]*bucket),
		excluded: make(map[string]*bucket),
		omit:     omit,
	}
}

// add accumulates one normalized demand under the uppercased
// ingredient name, routing excluded names into their own partition.
func (a *aggregator) add(family, name string, n units.Normalized) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "" {
		return
	}
	if a.omit[key] {
		a.accumulate(a.excluded, key, n)
		return
	}
	fam := strings.ToUpper(strings.TrimSpace(family))
	if fam == "" {
		fam = DefaultFamily
	}
	if a.active[fam] == nil {
		a.active[fam] = make(map[string]*bucket)
	}
	a.accumulate(a.active[fam], key, n)
}

func (a *aggregator) accumulate(into map[string]*bucket, key string, n units.Normalized) {
	b, ok := into[key]
	if !ok {
		into[key] = &bucket{total: n.Value, base: n.Base}
		return
	}
	if b.base != n.Base {
		// Same name used with incompatible unit types across recipes is
		// upstream data corruption; the sum is not reconciled, the last
		// written base wins for display.
		a.warnings = append(a.warnings,
			fmt.Sprintf("base unit mismatch for %s: %s vs %s", key, b.base, n.Base))
		b.base = n.Base
	}
	b.total += n.Value
}

// Build computes the shopping list for a menu plan. The recipes map
// resolves each reference's recipe id; references to ids that no
// longer resolve are skipped and contribute nothing.
func Build(plan models.MenuPlan, recipes map[string]models.Recipe) ShoppingList {
	agg := newAggregator(plan.ExcludedOrderItems)

	for _, ref := range plan.Recipes {
		recipe, ok := recipes[ref.RecipeID]
		if !ok {
			continue
		}

		// The reference's pax is independent from the recipe's authored
		// yield. A zero yield gives ratio 0 instead of dividing by zero.
		var ratio float64
		if recipe.YieldQuantity > 0 {
			ratio = ref.Pax / recipe.YieldQuantity
		}

		overrides := make(map[string]models.QuantityOverride, len(ref.IngredientOverrides))
		for name, ov := range ref.IngredientOverrides {
			overrides[strings.ToUpper(strings.TrimSpace(name))] = ov
		}

		for _, sub := range recipe.SubRecipes {
			for _, ing := range sub.Ingredients {
				qty := units.ParseQuantity(ing.Quantity) * ratio
				unit := ing.Unit
				if ov, ok := overrides[strings.ToUpper(strings.TrimSpace(ing.Name))]; ok {
					// Overrides are final absolute values, never rescaled.
					qty = units.ParseQuantity(ov.Quantity)
					unit = ov.Unit
				}
				agg.add(ing.Category, ing.Name, units.NormalizeToBasics(qty, unit))
			}
		}
	}

	for _, item := range plan.ExtraOrderItems {
		n := units.NormalizeToBasics(units.ParseQuantity(item.Quantity), item.Unit)
		agg.add(item.Family, item.Name, n)
	}

	return agg.result()
}

// result flattens the accumulation maps into the sorted output shape.
func (a *aggregator) result() ShoppingList {
	list := ShoppingList{Warnings: a.warnings}

	families := make([]string, 0, len(a.active))
	for fam := range a.active {
		families = append(families, fam)
	}
	sort.Strings(families)

	for _, fam := range families {
		section := FamilySection{Family: fam}
		for name, b := range a.active[fam] {
			section.Items = append(section.Items, newItem(name, b))
		}
		sort.Slice(section.Items, func(i, j int) bool {
			return section.Items[i].Name < section.Items[j].Name
		})
		list.Active = append(list.Active, section)
	}

	for name, b := range a.excluded {
		list.Excluded = append(list.Excluded, newItem(name, b))
	}
	sort.Slice(list.Excluded, func(i, j int) bool {
		return list.Excluded[i].Name < list.Excluded[j].Name
	})

	return list
}
