package services

import (
	"gorm.io/gorm"

	"github.com/lmoralesv/gin-recetario-api/internal/models"
	"github.com/lmoralesv/gin-recetario-api/internal/shopping"
)

// MenuService provides methods to interact with menu plans
type MenuService interface {
	// GetAllMenuPlans retrieves all menu plans, optionally filtered by owner
	GetAllMenuPlans(ownerID uint) ([]models.MenuPlan, error)
	// GetMenuPlanByID retrieves a menu plan by its ID with its recipe references
	GetMenuPlanByID(id string) (models.MenuPlan, error)
	// CreateMenuPlan creates a new menu plan
	CreateMenuPlan(plan models.MenuPlan) (models.MenuPlan, error)
	// UpdateMenuPlan updates an existing menu plan
	UpdateMenuPlan(plan models.MenuPlan) (models.MenuPlan, error)
	// DeleteMenuPlan deletes a menu plan by its ID
	DeleteMenuPlan(id string) error
	// BuildShoppingList aggregates the plan's scaled recipe demands into a shopping list
	BuildShoppingList(id string) (shopping.ShoppingList, error)
}

type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) GetAllMenuPlans(ownerID uint) ([]models.MenuPlan, error) {
	var plans []models.MenuPlan
	query := s.db.Preload("Recipes")
	if ownerID != 0 {
		query = query.Where("owner_id = ?", ownerID)
	}
	if err := query.Order("date desc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *menuService) GetMenuPlanByID(id string) (models.MenuPlan, error) {
	var plan models.MenuPlan
	if err := s.db.Preload("Recipes").First(&plan, "id = ?", id).Error; err != nil {
		return models.MenuPlan{}, err
	}
	return plan, nil
}

func (s *menuService) CreateMenuPlan(plan models.MenuPlan) (models.MenuPlan, error) {
	if err := s.db.Create(&plan).Error; err != nil {
		return models.MenuPlan{}, err
	}
	return plan, nil
}

func (s *menuService) UpdateMenuPlan(plan models.MenuPlan) (models.MenuPlan, error) {
	// Edit payloads carry no reference IDs; replace the stored
	// references instead of upserting next to them, otherwise the
	// shopping list would aggregate stale and new demand together.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_plan_id = ?", plan.ID).Delete(&models.MenuRecipeReference{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&plan).Error
	})
	if err != nil {
		return models.MenuPlan{}, err
	}
	return plan, nil
}

func (s *menuService) DeleteMenuPlan(id string) error {
	if err := s.db.Select("Recipes").Delete(&models.MenuPlan{ID: id}).Error; err != nil {
		return err
	}
	return nil
}

func (s *menuService) BuildShoppingList(id string) (shopping.ShoppingList, error) {
	plan, err := s.GetMenuPlanByID(id)
	if err != nil {
		return shopping.ShoppingList{}, err
	}

	// Resolve referenced recipes; ids that no longer exist are simply
	// left out of the map and skipped by the aggregator.
	ids := make([]string, 0, len(plan.Recipes))
	for _, ref := range plan.Recipes {
		ids = append(ids, ref.RecipeID)
	}
	var recipes []models.Recipe
	if len(ids) > 0 {
		if err := s.db.Preload("SubRecipes.Ingredients").Find(&recipes, "id IN ?", ids).Error; err != nil {
			return shopping.ShoppingList{}, err
		}
	}
	byID := make(map[string]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	return shopping.Build(plan, byID), nil
}
