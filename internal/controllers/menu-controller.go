package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lmoralesv/gin-recetario-api/internal/models"
	"github.com/lmoralesv/gin-recetario-api/internal/services"
)

// MenuController handles HTTP requests related to menu plans
type MenuController interface {
	// GetMyMenuPlans retrieves the authenticated user's menu plans
	GetMyMenuPlans(c *gin.Context)
	// GetMenuPlanByID retrieves a menu plan by its ID
	GetMenuPlanByID(c *gin.Context)
	// CreateMenuPlan creates a new menu plan
	CreateMenuPlan(c *gin.Context)
	// UpdateMenuPlan updates an existing menu plan
	UpdateMenuPlan(c *gin.Context)
	// DeleteMenuPlan deletes a menu plan by its ID
	DeleteMenuPlan(c *gin.Context)
	// GetShoppingList aggregates the plan into a shopping list
	GetShoppingList(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) *menuController {
	return &menuController{service: service}
}

// ownedPlan loads the plan and enforces ownership, replying on failure.
func (mc *menuController) ownedPlan(ctx *gin.Context) (models.MenuPlan, bool) {
	plan, err := mc.service.GetMenuPlanByID(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Menu plan not found"})
		return models.MenuPlan{}, false
	}

	userID, _ := currentUserID(ctx)
	if plan.OwnerID != userID && !isAdmin(ctx) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You can only access your own menu plans"})
		return models.MenuPlan{}, false
	}
	return plan, true
}

// GetMyMenuPlans godoc
// @Summary Get own menu plans
// @Tags menus
// @Accept json
// @Produce json
// @Success 200 {array} models.MenuPlan
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/menus [get]
func (mc *menuController) GetMyMenuPlans(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	plans, err := mc.service.GetAllMenuPlans(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve menu plans"})
		return
	}
	ctx.JSON(http.StatusOK, plans)
}

// GetMenuPlanByID godoc
// @Summary Get menu plan by ID
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu plan ID"
// @Success 200 {object} models.MenuPlan
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/menus/{id} [get]
func (mc *menuController) GetMenuPlanByID(ctx *gin.Context) {
	plan, ok := mc.ownedPlan(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, plan)
}

// CreateMenuPlan godoc
// @Summary Create a menu plan
// @Tags menus
// @Accept json
// @Produce json
// @Param menu body models.MenuPlan true "Menu plan object"
// @Success 201 {object} models.MenuPlan
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/menus [post]
func (mc *menuController) CreateMenuPlan(ctx *gin.Context) {
	var plan models.MenuPlan
	if err := ctx.ShouldBindJSON(&plan); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	plan.OwnerID = userID

	created, err := mc.service.CreateMenuPlan(plan)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu plan"})
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateMenuPlan godoc
// @Summary Update a menu plan
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu plan ID"
// @Param menu body models.MenuPlan true "Menu plan object"
// @Success 200 {object} models.MenuPlan
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/menus/{id} [put]
func (mc *menuController) UpdateMenuPlan(ctx *gin.Context) {
	existing, ok := mc.ownedPlan(ctx)
	if !ok {
		return
	}

	var plan models.MenuPlan
	if err := ctx.ShouldBindJSON(&plan); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	plan.ID = existing.ID
	plan.OwnerID = existing.OwnerID

	updated, err := mc.service.UpdateMenuPlan(plan)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu plan"})
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteMenuPlan godoc
// @Summary Delete a menu plan
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu plan ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/menus/{id} [delete]
func (mc *menuController) DeleteMenuPlan(ctx *gin.Context) {
	existing, ok := mc.ownedPlan(ctx)
	if !ok {
		return
	}

	if err := mc.service.DeleteMenuPlan(existing.ID); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu plan"})
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// GetShoppingList godoc
// @Summary Get the aggregated shopping list for a menu plan
// @Description Scale every referenced recipe to its pax, apply overrides and exclusions, and aggregate demand per family in base units
// @Tags menus
// @Accept json
// @Produce json
// @Param id path string true "Menu plan ID"
// @Success 200 {object} shopping.ShoppingList
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/protected/menus/{id}/shopping-list [get]
func (mc *menuController) GetShoppingList(ctx *gin.Context) {
	existing, ok := mc.ownedPlan(ctx)
	if !ok {
		return
	}

	list, err := mc.service.BuildShoppingList(existing.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build shopping list"})
		return
	}
	ctx.JSON(http.StatusOK, list)
}
