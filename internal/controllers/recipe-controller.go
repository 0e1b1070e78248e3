package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmoralesv/gin-recetario-api/internal/models"
	"github.com/lmoralesv/gin-recetario-api/internal/services"
)

// RecipeController handles HTTP requests related to recipes
type RecipeController interface {
	// GetPublicRecipes retrieves recipes marked public
	GetPublicRecipes(c *gin.Context)
	// GetMyRecipes retrieves the authenticated user's recipes
	GetMyRecipes(c *gin.Context)
	// GetRecipeByID retrieves a recipe by its ID
	GetRecipeByID(c *gin.Context)
	// CreateRecipe creates a new recipe
	CreateRecipe(c *gin.Context)
	// UpdateRecipe updates an existing recipe
	UpdateRecipe(c *gin.Context)
	// DeleteRecipe deletes a recipe by its ID
	DeleteRecipe(c *gin.Context)
	// SyncRecipeCosts refreshes a recipe's costs from the product catalog
	SyncRecipeCosts(c *gin.Context)
}

type recipeController struct {
	service services.RecipeService
}

// NewRecipeController creates a new instance of RecipeController
func NewRecipeController(service services.RecipeService) *recipeController {
	return &recipeController{service: service}
}

// currentUserID extracts the authenticated user's ID from the context.
func currentUserID(ctx *gin.Context) (uint, bool) {
	userID, exists := ctx.Get("userID")
	if !exists {
		return 0, false
	}
	switch v := userID.(type) {
	case uint:
		return v, true
	case int:
		return uint(v), true
	default:
		return 0, false
	}
}

func isAdmin(ctx *gin.Context) bool {
	role, _ := ctx.Get("userRole")
	return role == "admin"
}

// GetPublicRecipes godoc
// @Summary Get public recipes
// @Description Get all recipes marked public, with optional name filtering
// @Tags recipes
// @Accept json
// @Produce json
// @Param name query string false "Filter by recipe name (partial match)"
// @Success 200 {array} models.Recipe
// @Failure 500 {object} map[string]string
// @Router /api/v1/public/recipes [get]
func (rc *recipeController) GetPublicRecipes(ctx *gin.Context) {
	name := ctx.Query("name")
	recipes, err := rc.service.GetAllRecipes(0, name, true)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}
	ctx.JSON(http.StatusOK, recipes)
}

// GetMyRecipes godoc
// @Summary Get own recipes
// @Description Get the authenticated user's recipes
// @Tags recipes
// @Accept json
// @Produce json
// @Param name query string false "Filter by recipe name (partial match)"
// @Success 200 {array} models.Recipe
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/recipes [get]
func (rc *recipeController) GetMyRecipes(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	recipes, err := rc.service.GetAllRecipes(userID, ctx.Query("name"), false)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recipes"})
		return
	}
	ctx.JSON(http.StatusOK, recipes)
}

// GetRecipeByID godoc
// @Summary Get recipe by ID
// @Description Get a single recipe with its sub-recipes and priced ingredients
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.Recipe
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/recipes/{id} [get]
func (rc *recipeController) GetRecipeByID(ctx *gin.Context) {
	recipe, err := rc.service.GetRecipeByID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	userID, _ := currentUserID(ctx)
	if !recipe.IsPublic && recipe.OwnerID != userID && !isAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You can only view your own recipes"})
		return
	}
	ctx.JSON(http.StatusOK, recipe)
}

// CreateRecipe godoc
// @Summary Create a new recipe
// @Description Create a recipe; ingredients are priced against the current catalog
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body models.Recipe true "Recipe object"
// @Success 201 {object} models.Recipe
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/recipes [post]
func (rc *recipeController) CreateRecipe(ctx *gin.Context) {
	var recipe models.Recipe
	if err := ctx.ShouldBindJSON(&recipe); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	recipe.OwnerID = userID

	created, err := rc.service.CreateRecipe(recipe)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Update a recipe; ingredients are re-priced against the current catalog
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Param recipe body models.Recipe true "Recipe object"
// @Success 200 {object} models.Recipe
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/recipes/{id} [put]
func (rc *recipeController) UpdateRecipe(ctx *gin.Context) {
	existing, err := rc.service.GetRecipeByID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	if existing.OwnerID != userID && !isAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{
			"error":        "You can only update your own recipes",
			"recipe_owner": existing.OwnerID,
			"your_id":      userID,
		})
		return
	}

	var recipe models.Recipe
	if err := ctx.ShouldBindJSON(&recipe); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// Ensure the ID from URL is used
	recipe.ID = existing.ID
	// Preserve the original owner
	recipe.OwnerID = existing.OwnerID

	updated, err := rc.service.UpdateRecipe(recipe)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/recipes/{id} [delete]
func (rc *recipeController) DeleteRecipe(ctx *gin.Context) {
	existing, err := rc.service.GetRecipeByID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	if existing.OwnerID != userID && !isAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{
			"error":        "You can only delete your own recipes",
			"recipe_owner": existing.OwnerID,
			"your_id":      userID,
		})
		return
	}

	if err := rc.service.DeleteRecipe(existing.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// SyncRecipeCosts godoc
// @Summary Re-sync a recipe against the catalog
// @Description Refresh ingredient prices/allergens from the product catalog and recompute the total cost
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} models.Recipe
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/recipes/{id}/sync [post]
func (rc *recipeController) SyncRecipeCosts(ctx *gin.Context) {
	existing, err := rc.service.GetRecipeByID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	userID, _ := currentUserID(ctx)
	if existing.OwnerID != userID && !isAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You can only sync your own recipes"})
		return
	}

	synced, err := rc.service.SyncRecipeCosts(existing.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync recipe costs"})
		return
	}
	ctx.JSON(http.StatusOK, synced)
}
