package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is one line of a sub-recipe. Quantity keeps the raw
// user-typed string ("0,5") as the display contract; the calculation
// packages parse it at their boundary. PricePerUnit is denominated in
// the ingredient's current Unit, never a fixed base unit, so Cost is
// always Quantity × PricePerUnit without further conversion.
type Ingredient struct {
	ID           uint       `json:"-" gorm:"primaryKey"`
	SubRecipeID  uint       `json:"-" gorm:"index;not null"`
	Name         string     `json:"name" gorm:"not null"`
	Quantity     string     `json:"quantity"`
	Unit         string     `json:"unit"`
	Allergens    []Allergen `json:"allergens" gorm:"serializer:json"`
	Category     string     `json:"category"`
	PricePerUnit float64    `json:"pricePerUnit"`
	Cost         float64    `json:"cost"`
}

// SubRecipe groups the ingredients of one preparation step of a recipe.
type SubRecipe struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	RecipeID     string       `json:"-" gorm:"index;not null"`
	Name         string       `json:"name"`
	Ingredients  []Ingredient `json:"ingredients" gorm:"foreignKey:SubRecipeID;constraint:OnDelete:CASCADE"`
	Instructions string       `json:"instructions"`
	Photos       []string     `json:"photos" gorm:"serializer:json"`
}

// Recipe is a technical recipe card. TotalCost is derived from the
// ingredient costs and recomputed on every catalog sync; it is never an
// independently edited field.
type Recipe struct {
	ID              string      `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string      `json:"name" gorm:"index;not null"`
	Categories      []string    `json:"categories" gorm:"serializer:json"`
	YieldQuantity   float64     `json:"yieldQuantity"`
	YieldUnit       string      `json:"yieldUnit"`
	SubRecipes      []SubRecipe `json:"subRecipes" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	TotalCost       float64     `json:"totalCost"`
	ManualAllergens []Allergen  `json:"manualAllergens" gorm:"serializer:json"`
	IsPublic        bool        `json:"isPublic" gorm:"default:false"`
	OwnerID         uint        `json:"ownerId" gorm:"index"`
	LastModified    time.Time   `json:"lastModified" gorm:"autoUpdateTime"`
	CreatedAt       time.Time   `json:"created_at"`
}

// BeforeCreate assigns a UUID when none was provided
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

func (Recipe) TableName() string {
	return "recipes"
}

func (SubRecipe) TableName() string {
	return "sub_recipes"
}

func (Ingredient) TableName() string {
	return "ingredients"
}
