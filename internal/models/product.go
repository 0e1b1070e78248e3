package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product is an entry in the shared price catalog. Ingredients sync
// against it by case-insensitive exact name match: on a hit the
// ingredient's price (rebased to its own unit), allergens and family
// are overwritten from the product.
type Product struct {
	ID           string     `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string     `json:"name" gorm:"uniqueIndex;not null"`
	Family       string     `json:"family" gorm:"index"`
	Unit         string     `json:"unit" gorm:"not null;default:'kg'"`
	PricePerUnit float64    `json:"pricePerUnit"`
	Allergens    []Allergen `json:"allergens" gorm:"serializer:json"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BeforeCreate assigns a UUID when none was provided
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}
