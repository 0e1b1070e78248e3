package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuantityOverride replaces a scaled ingredient quantity inside one
// menu reference. The quantity is an absolute final value, never
// re-multiplied by the reference's scaling ratio.
type QuantityOverride struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// MenuRecipeReference ties a recipe into a menu plan at its own portion
// target. Pax is independent from the recipe's authored yield; the
// scaling ratio pax/yield is applied at read time and never baked into
// stored quantities.
type MenuRecipeReference struct {
	ID                  uint                        `json:"-" gorm:"primaryKey"`
	MenuPlanID          string                      `json:"-" gorm:"index;not null"`
	RecipeID            string                      `json:"recipeId" gorm:"index;not null"`
	Pax                 float64                     `json:"pax"`
	IngredientOverrides map[string]QuantityOverride `json:"ingredientOverrides" gorm:"serializer:json"`
	Checklist           []string                    `json:"checklist" gorm:"serializer:json"`
	ManualChecklist     []string                    `json:"manualChecklist" gorm:"serializer:json"`
	IsVerified          bool                        `json:"isVerified" gorm:"default:false"`
}

// OrderItem is an ad hoc purchase line added to a menu plan by hand,
// not tied to any recipe.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Family   string `json:"family"`
}

// MenuPlan is the planning document for one service: a set of recipe
// references plus hand-added extras and exclusions for the aggregated
// shopping list.
type MenuPlan struct {
	ID                 string                `json:"id" gorm:"type:uuid;primaryKey"`
	Title              string                `json:"title" gorm:"not null"`
	Date               time.Time             `json:"date"`
	Pax                float64               `json:"pax"`
	Recipes            []MenuRecipeReference `json:"recipes" gorm:"foreignKey:MenuPlanID;constraint:OnDelete:CASCADE"`
	ExtraOrderItems    []OrderItem           `json:"extraOrderItems" gorm:"serializer:json"`
	ExcludedOrderItems []string              `json:"excludedOrderItems" gorm:"serializer:json"`
	OwnerID            uint                  `json:"ownerId" gorm:"index"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// BeforeCreate assigns a UUID when none was provided
func (m *MenuPlan) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

func (MenuPlan) TableName() string {
	return "menu_plans"
}

func (MenuRecipeReference) TableName() string {
	return "menu_recipe_references"
}
