package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lmoralesv/gin-recetario-api/internal/models"
)

// ProductService provides methods to interact with the shared price catalog
type ProductService interface {
	// GetAllProducts retrieves the full catalog, optionally filtered by family or name
	GetAllProducts(family, name string) ([]models.Product, error)
	// GetProductByID retrieves a product by its ID
	GetProductByID(id string) (models.Product, error)
	// CreateProduct creates a new catalog entry
	CreateProduct(product models.Product) (models.Product, error)
	// UpdateProduct updates an existing catalog entry
	UpdateProduct(product models.Product) (models.Product, error)
	// DeleteProduct deletes a catalog entry by its ID
	DeleteProduct(id string) error
}

// productService is the implementation of the ProductService interface
type productService struct {
	db *gorm.DB
}

// NewProductService creates a new instance of ProductService
func NewProductService(db *gorm.DB) ProductService {
	return &productService{db: db}
}

func (s *productService) GetAllProducts(family, name string) ([]models.Product, error) {
	var products []models.Product
	query := s.db
	if family != "" {
		query = query.Where("family = ?", family)
	}
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *productService) GetProductByID(id string) (models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *productService) CreateProduct(product models.Product) (models.Product, error) {
	for _, a := range product.Allergens {
		if !a.IsValid() {
			return models.Product{}, errors.New("invalid_allergen")
		}
	}
	if err := s.db.Create(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *productService) UpdateProduct(product models.Product) (models.Product, error) {
	for _, a := range product.Allergens {
		if !a.IsValid() {
			return models.Product{}, errors.New("invalid_allergen")
		}
	}
	if err := s.db.Save(&product).Error; err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(id string) error {
	if err := s.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}
