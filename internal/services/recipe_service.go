package services

import (
	"gorm.io/gorm"

	"github.com/lmoralesv/gin-recetario-api/internal/costing"
	"github.com/lmoralesv/gin-recetario-api/internal/models"
)

// RecipeService provides methods to interact with the recipe database
type RecipeService interface {
	// GetAllRecipes retrieves recipes with optional filtering
	GetAllRecipes(ownerID uint, name string, publicOnly bool) ([]models.Recipe, error)
	// GetRecipeByID retrieves a recipe by its ID with sub-recipes and ingredients
	GetRecipeByID(id string) (models.Recipe, error)
	// CreateRecipe creates a new recipe, costing it against the current catalog
	CreateRecipe(recipe models.Recipe) (models.Recipe, error)
	// UpdateRecipe updates an existing recipe, re-costing it against the current catalog
	UpdateRecipe(recipe models.Recipe) (models.Recipe, error)
	// DeleteRecipe deletes a recipe from the database by its ID
	DeleteRecipe(id string) error
	// SyncRecipeCosts refreshes one recipe's prices/allergens from the catalog and persists it
	SyncRecipeCosts(id string) (models.Recipe, error)
	// SyncAllRecipes re-derives every recipe's costs; called after catalog changes
	SyncAllRecipes() error
}

type recipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new instance of RecipeService
func NewRecipeService(db *gorm.DB) RecipeService {
	return &recipeService{db: db}
}

func (s *recipeService) GetAllRecipes(ownerID uint, name string, publicOnly bool) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := s.db.Preload("SubRecipes.Ingredients")
	if ownerID != 0 {
		query = query.Where("owner_id = ?", ownerID)
	}
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}
	if err := query.Order("name asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *recipeService) GetRecipeByID(id string) (models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.Preload("SubRecipes.Ingredients").First(&recipe, "id = ?", id).Error; err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

func (s *recipeService) CreateRecipe(recipe models.Recipe) (models.Recipe, error) {
	catalog, err := s.catalogIndex()
	if err != nil {
		return models.Recipe{}, err
	}
	costing.SyncRecipe(&recipe, catalog)
	if err := s.db.Create(&recipe).Error; err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(recipe models.Recipe) (models.Recipe, error) {
	catalog, err := s.catalogIndex()
	if err != nil {
		return models.Recipe{}, err
	}
	costing.SyncRecipe(&recipe, catalog)

	// Edit payloads arrive without association IDs, so an upsert would
	// append a second tree next to the stored one. Replace the tree
	// instead: drop the persisted sub-recipes and ingredients, then
	// write the payload's.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteRecipeTree(tx, recipe.ID); err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&recipe).Error
	})
	if err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

// deleteRecipeTree removes a recipe's stored sub-recipes and their
// ingredients, leaving the recipe row itself in place.
func deleteRecipeTree(tx *gorm.DB, recipeID string) error {
	var subIDs []uint
	if err := tx.Model(&models.SubRecipe{}).Where("recipe_id = ?", recipeID).Pluck("id", &subIDs).Error; err != nil {
		return err
	}
	if len(subIDs) == 0 {
		return nil
	}
	if err := tx.Where("sub_recipe_id IN ?", subIDs).Delete(&models.Ingredient{}).Error; err != nil {
		return err
	}
	return tx.Where("recipe_id = ?", recipeID).Delete(&models.SubRecipe{}).Error
}

func (s *recipeService) DeleteRecipe(id string) error {
	if err := s.db.Select("SubRecipes", "SubRecipes.Ingredients").Delete(&models.Recipe{ID: id}).Error; err != nil {
		return err
	}
	return nil
}

func (s *recipeService) SyncRecipeCosts(id string) (models.Recipe, error) {
	recipe, err := s.GetRecipeByID(id)
	if err != nil {
		return models.Recipe{}, err
	}
	catalog, err := s.catalogIndex()
	if err != nil {
		return models.Recipe{}, err
	}
	costing.SyncRecipe(&recipe, catalog)
	if err := s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&recipe).Error; err != nil {
		return models.Recipe{}, err
	}
	return recipe, nil
}

func (s *recipeService) SyncAllRecipes() error {
	catalog, err := s.catalogIndex()
	if err != nil {
		return err
	}
	var recipes []models.Recipe
	if err := s.db.Preload("SubRecipes.Ingredients").Find(&recipes).Error; err != nil {
		return err
	}
	for i := range recipes {
		costing.SyncRecipe(&recipes[i], catalog)
		if err := s.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&recipes[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// catalogIndex loads the current product catalog snapshot as the
// explicit lookup table the costing package expects.
func (s *recipeService) catalogIndex() (costing.CatalogIndex, error) {
	var products []models.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}
	return costing.NewCatalogIndex(products), nil
}
