package costing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmoralesv/gin-recetario-api/internal/models"
)

func TestLineCost(t *testing.T) {
	assert.InDelta(t, 5.0, LineCost(500, 0.01), 1e-9)
	assert.Zero(t, LineCost(500, 0))
	assert.Zero(t, LineCost(math.NaN(), 2))
}

func TestLineCostString(t *testing.T) {
	assert.InDelta(t, 0.475, LineCostString("0,5", 0.95), 1e-9)
	assert.Zero(t, LineCostString("garbage", 0.95))
	assert.Zero(t, LineCostString("", 0.95))
}

func testRecipe() models.Recipe {
	return models.Recipe{
		ID:            "r1",
		Name:          "SOFRITO",
		YieldQuantity: 4,
		YieldUnit:     "raciones",
		SubRecipes: []models.SubRecipe{
			{
				Name: "Base",
				Ingredients: []models.Ingredient{
					{Name: "Cebolla", Quantity: "500", Unit: "g"},
					{Name: "Aceite", Quantity: "1", Unit: "dl"},
					{Name: "Perejil", Quantity: "1", Unit: "manojo", PricePerUnit: 0.80},
				},
			},
		},
	}
}

func testCatalog() CatalogIndex {
	return NewCatalogIndex([]models.Product{
		{Name: "CEBOLLA", Family: "VERDURAS", Unit: "kg", PricePerUnit: 0.95, Allergens: nil},
		{Name: "Aceite", Family: "ACEITES", Unit: "l", PricePerUnit: 4.50, Allergens: []models.Allergen{models.AllergenSulfitos}},
	})
}

func TestSyncRecipeRebasesPricesToIngredientUnit(t *testing.T) {
	recipe := testRecipe()
	SyncRecipe(&recipe, testCatalog())

	cebolla := recipe.SubRecipes[0].Ingredients[0]
	// 0.95/kg priced in grams
	assert.InDelta(t, 0.00095, cebolla.PricePerUnit, 1e-12)
	assert.InDelta(t, 0.475, cebolla.Cost, 1e-9)
	assert.Equal(t, "VERDURAS", cebolla.Category)

	aceite := recipe.SubRecipes[0].Ingredients[1]
	// 4.50/l priced in deciliters
	assert.InDelta(t, 0.45, aceite.PricePerUnit, 1e-9)
	assert.InDelta(t, 0.45, aceite.Cost, 1e-9)
	assert.Equal(t, []models.Allergen{models.AllergenSulfitos}, aceite.Allergens)

	assert.InDelta(t, 0.475+0.45+0.80, recipe.TotalCost, 1e-9)
}

// An ingredient without a catalog match keeps its last-known price,
// allergens and category; stale is not an error.
func TestSyncRecipeMissingProductLeftUntouched(t *testing.T) {
	recipe := testRecipe()
	SyncRecipe(&recipe, testCatalog())

	perejil := recipe.SubRecipes[0].Ingredients[2]
	assert.InDelta(t, 0.80, perejil.PricePerUnit, 1e-9)
	assert.InDelta(t, 0.80, perejil.Cost, 1e-9)
	assert.Empty(t, perejil.Category)
}

func TestSyncRecipeIsIdempotent(t *testing.T) {
	recipe := testRecipe()
	catalog := testCatalog()

	SyncRecipe(&recipe, catalog)
	first := recipe.TotalCost
	firstPrice := recipe.SubRecipes[0].Ingredients[0].PricePerUnit

	SyncRecipe(&recipe, catalog)
	assert.InDelta(t, first, recipe.TotalCost, 1e-12)
	assert.InDelta(t, firstPrice, recipe.SubRecipes[0].Ingredients[0].PricePerUnit, 1e-12)
}

func TestCatalogIndexLookupIsCaseInsensitive(t *testing.T) {
	idx := testCatalog()
	p, ok := idx.Lookup("cebolla")
	require.True(t, ok)
	assert.Equal(t, "CEBOLLA", p.Name)

	_, ok = idx.Lookup("ZANAHORIA")
	assert.False(t, ok)
}

// Changing the unit must rebase the price by the reciprocal factor so
// the line cost is invariant: 1 kg at 10/kg = 1000 g at 0.01/g.
func TestChangeIngredientUnitKeepsCostInvariant(t *testing.T) {
	ing := models.Ingredient{Name: "Harina", Quantity: "1", Unit: "kg", PricePerUnit: 10}
	ing.Cost = LineCostString(ing.Quantity, ing.PricePerUnit)
	require.InDelta(t, 10.0, ing.Cost, 1e-9)

	ChangeIngredientUnit(&ing, "g")
	assert.Equal(t, "g", ing.Unit)
	assert.Equal(t, "1000", ing.Quantity)
	assert.InDelta(t, 0.01, ing.PricePerUnit, 1e-12)
	assert.InDelta(t, 10.0, ing.Cost, 1e-9)

	ChangeIngredientUnit(&ing, "kg")
	assert.InDelta(t, 10.0, ing.PricePerUnit, 1e-9)
	assert.InDelta(t, 10.0, ing.Cost, 1e-9)
}

func TestChangeIngredientUnitIncommensurable(t *testing.T) {
	ing := models.Ingredient{Name: "Perejil", Quantity: "2", Unit: "manojo", PricePerUnit: 0.80}
	ChangeIngredientUnit(&ing, "kg")

	// Silent no-op policy: only the label switches.
	assert.Equal(t, "kg", ing.Unit)
	assert.Equal(t, "2", ing.Quantity)
	assert.InDelta(t, 0.80, ing.PricePerUnit, 1e-9)
}
