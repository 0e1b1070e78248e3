package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/lmoralesv/gin-recetario-api/internal/models"
	"github.com/lmoralesv/gin-recetario-api/internal/services"
)

// ProductController handles HTTP requests for the shared price catalog
type ProductController interface {
	// GetAllProducts retrieves the catalog
	GetAllProducts(c *gin.Context)
	// GetProductByID retrieves a product by its ID
	GetProductByID(c *gin.Context)
	// CreateProduct creates a new catalog entry
	CreateProduct(c *gin.Context)
	// UpdateProduct updates a catalog entry and re-syncs recipe costs
	UpdateProduct(c *gin.Context)
	// DeleteProduct deletes a catalog entry
	DeleteProduct(c *gin.Context)
}

type productController struct {
	service       services.ProductService
	recipeService services.RecipeService
}

// NewProductController creates a new instance of ProductController
func NewProductController(service services.ProductService, recipeService services.RecipeService) *productController {
	return &productController{service: service, recipeService: recipeService}
}

// GetAllProducts godoc
// @Summary Get the product catalog
// @Description Get all catalog entries with optional filtering
// @Tags products
// @Accept json
// @Produce json
// @Param family query string false "Filter by family"
// @Param name query string false "Filter by product name (partial match)"
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/products [get]
func (pc *productController) GetAllProducts(ctx *gin.Context) {
	family := ctx.Query("family")
	name := ctx.Query("name")

	products, err := pc.service.GetAllProducts(family, name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /api/v1/public/products/{id} [get]
func (pc *productController) GetProductByID(ctx *gin.Context) {
	id := ctx.Param("id")
	product, err := pc.service.GetProductByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create a catalog entry
// @Tags products
// @Accept json
// @Produce json
// @Param product body models.Product true "Product object"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/products [post]
func (pc *productController) CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	created, err := pc.service.CreateProduct(product)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	pc.resyncRecipes()
	ctx.JSON(http.StatusCreated, created)
}

// UpdateProduct godoc
// @Summary Update a catalog entry
// @Description Update a product; recipes matching it by name are re-costed
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body models.Product true "Product object"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/products/{id} [put]
func (pc *productController) UpdateProduct(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := pc.service.GetProductByID(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	// Ensure the ID from URL is used
	product.ID = id

	updated, err := pc.service.UpdateProduct(product)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	pc.resyncRecipes()
	ctx.JSON(http.StatusOK, updated)
}

// DeleteProduct godoc
// @Summary Delete a catalog entry
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/admin/products/{id} [delete]
func (pc *productController) DeleteProduct(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := pc.service.GetProductByID(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := pc.service.DeleteProduct(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// resyncRecipes re-derives every recipe's costs after a catalog change.
// Failures are logged, not surfaced: the catalog write already happened
// and recipes can be re-synced on their next read.
func (pc *productController) resyncRecipes() {
	if err := pc.recipeService.SyncAllRecipes(); err != nil {
		log.WithError(err).Warn("Failed to re-sync recipe costs after catalog change")
	}
}
