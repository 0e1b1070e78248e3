package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lmoralesv/gin-recetario-api/internal/database"
	"github.com/lmoralesv/gin-recetario-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.Migrate(db)
	require.NoError(t, err)

	return db
}

func seedTestCatalog(t *testing.T, db *gorm.DB) {
	products := []models.Product{
		{Name: "CEBOLLA", Family: "VERDURAS", Unit: "kg", PricePerUnit: 0.95},
		{Name: "HARINA", Family: "SECOS", Unit: "kg", PricePerUnit: 0.70,
			Allergens: []models.Allergen{models.AllergenGluten}},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
}

func demoRecipe(ownerID uint) models.Recipe {
	return models.Recipe{
		Name:          "SOFRITO",
		YieldQuantity: 4,
		YieldUnit:     "raciones",
		OwnerID:       ownerID,
		SubRecipes: []models.SubRecipe{
			{
				Name: "Base",
				Ingredients: []models.Ingredient{
					{Name: "Cebolla", Quantity: "500", Unit: "g"},
					{Name: "Harina", Quantity: "0,25", Unit: "kg"},
				},
			},
		},
	}
}

func TestCreateRecipeCostsAgainstCatalog(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	service := NewRecipeService(db)

	created, err := service.CreateRecipe(demoRecipe(1))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// 500 g at 0.95/kg + 0.25 kg at 0.70/kg
	assert.InDelta(t, 0.475+0.175, created.TotalCost, 1e-9)

	harina := created.SubRecipes[0].Ingredients[1]
	assert.Equal(t, "SECOS", harina.Category)
	assert.Equal(t, []models.Allergen{models.AllergenGluten}, harina.Allergens)
}

func TestGetRecipeByIDPreloadsTree(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	service := NewRecipeService(db)

	created, err := service.CreateRecipe(demoRecipe(1))
	require.NoError(t, err)

	loaded, err := service.GetRecipeByID(created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.SubRecipes, 1)
	require.Len(t, loaded.SubRecipes[0].Ingredients, 2)
	assert.InDelta(t, created.TotalCost, loaded.TotalCost, 1e-9)
}

// Catalog price changes must propagate into stored recipe totals.
func TestSyncAllRecipesAfterPriceChange(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	service := NewRecipeService(db)

	created, err := service.CreateRecipe(demoRecipe(1))
	require.NoError(t, err)

	// Onion price doubles
	var cebolla models.Product
	require.NoError(t, db.Where("name = ?", "CEBOLLA").First(&cebolla).Error)
	cebolla.PricePerUnit = 1.90
	require.NoError(t, db.Save(&cebolla).Error)

	require.NoError(t, service.SyncAllRecipes())

	loaded, err := service.GetRecipeByID(created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.95+0.175, loaded.TotalCost, 1e-9)
}

// An edit payload comes from JSON without association IDs. The update
// must replace the stored tree, not append a second one next to it,
// or every later catalog sync recomputes the total over duplicates.
func TestUpdateRecipeReplacesIngredientTree(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	service := NewRecipeService(db)

	created, err := service.CreateRecipe(demoRecipe(1))
	require.NoError(t, err)

	update := models.Recipe{
		ID:            created.ID,
		Name:          created.Name,
		YieldQuantity: created.YieldQuantity,
		YieldUnit:     created.YieldUnit,
		OwnerID:       created.OwnerID,
		SubRecipes: []models.SubRecipe{
			{
				Name: "Base",
				Ingredients: []models.Ingredient{
					{Name: "Cebolla", Quantity: "500", Unit: "g"},
				},
			},
		},
	}
	updated, err := service.UpdateRecipe(update)
	require.NoError(t, err)
	assert.InDelta(t, 0.475, updated.TotalCost, 1e-9)

	loaded, err := service.GetRecipeByID(created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.SubRecipes, 1)
	require.Len(t, loaded.SubRecipes[0].Ingredients, 1)
	assert.Equal(t, "Cebolla", loaded.SubRecipes[0].Ingredients[0].Name)

	// A catalog-wide sync over the stored tree must land on the same
	// total as the update itself.
	require.NoError(t, service.SyncAllRecipes())
	loaded, err = service.GetRecipeByID(created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.475, loaded.TotalCost, 1e-9)
}

func TestSyncRecipeCostsIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	service := NewRecipeService(db)

	created, err := service.CreateRecipe(demoRecipe(1))
	require.NoError(t, err)

	first, err := service.SyncRecipeCosts(created.ID)
	require.NoError(t, err)
	second, err := service.SyncRecipeCosts(created.ID)
	require.NoError(t, err)

	assert.InDelta(t, first.TotalCost, second.TotalCost, 1e-12)
}

func TestDeleteRecipe(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	service := NewRecipeService(db)

	created, err := service.CreateRecipe(demoRecipe(1))
	require.NoError(t, err)

	require.NoError(t, service.DeleteRecipe(created.ID))

	_, err = service.GetRecipeByID(created.ID)
	assert.Error(t, err)
}

func TestGetAllRecipesFilters(t *testing.T) {
	db := setupTestDB(t)
	seedTestCatalog(t, db)
	service := NewRecipeService(db)

	mine := demoRecipe(1)
	_, err := service.CreateRecipe(mine)
	require.NoError(t, err)

	public := demoRecipe(2)
	public.Name = "PISTO"
	public.IsPublic = true
	_, err = service.CreateRecipe(public)
	require.NoError(t, err)

	owned, err := service.GetAllRecipes(1, "", false)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "SOFRITO", owned[0].Name)

	visible, err := service.GetAllRecipes(0, "", true)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "PISTO", visible[0].Name)
}
