package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/lmoralesv/gin-recetario-api/docs" // Import generated docs
	"github.com/lmoralesv/gin-recetario-api/internal/config"
	"github.com/lmoralesv/gin-recetario-api/internal/controllers"
	"github.com/lmoralesv/gin-recetario-api/internal/database"
	"github.com/lmoralesv/gin-recetario-api/internal/middleware"
	"github.com/lmoralesv/gin-recetario-api/internal/services"
)

var (
	db                *gorm.DB
	productService    services.ProductService
	recipeService     services.RecipeService
	menuService       services.MenuService
	userService       services.UserService
	productController controllers.ProductController
	recipeController  controllers.RecipeController
	menuController    controllers.MenuController
	authController    *controllers.AuthController
	configuration     *config.Config
)

// @title Recetario API
// @version 1.0
// @description Recipe cards, shared price catalog and menu planning for culinary schools
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Set JWT secret from configuration
	middleware.SetJWTSecret(configuration.JWTSecret)

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	productService = services.NewProductService(db)
	recipeService = services.NewRecipeService(db)
	menuService = services.NewMenuService(db)
	userService = services.NewUserService(db)
	productController = controllers.NewProductController(productService, recipeService)
	recipeController = controllers.NewRecipeController(recipeService)
	menuController = controllers.NewMenuController(menuService)
	authController = controllers.NewAuthController(userService, configuration.JWTSecret)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %+v", conf)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	})
	checkPanicErr(err)

	// Migrate the schema
	checkPanicErr(database.Migrate(db))
	return db
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	// Initialize Gin router
	router := gin.Default()

	// Define routes
	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/products", productController.GetAllProducts)
			publicApi.GET("/products/:id", productController.GetProductByID)
			publicApi.GET("/recipes", recipeController.GetPublicRecipes)
		}

		// Authentication routes (public but for auth purposes)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/register", authController.Register)
		}

		// Protected routes (requires JWT authentication)
		protectedApi := v1.Group("/protected")
		protectedApi.Use(middleware.JWTAuth())
		{
			protectedApi.GET("/recipes", recipeController.GetMyRecipes)
			protectedApi.POST("/recipes", recipeController.CreateRecipe)
			protectedApi.GET("/recipes/:id", recipeController.GetRecipeByID)
			protectedApi.PUT("/recipes/:id", recipeController.UpdateRecipe)
			protectedApi.DELETE("/recipes/:id", recipeController.DeleteRecipe)
			protectedApi.POST("/recipes/:id/sync", recipeController.SyncRecipeCosts)

			protectedApi.GET("/menus", menuController.GetMyMenuPlans)
			protectedApi.POST("/menus", menuController.CreateMenuPlan)
			protectedApi.GET("/menus/:id", menuController.GetMenuPlanByID)
			protectedApi.PUT("/menus/:id", menuController.UpdateMenuPlan)
			protectedApi.DELETE("/menus/:id", menuController.DeleteMenuPlan)
			protectedApi.GET("/menus/:id/shopping-list", menuController.GetShoppingList)

			// Catalog mutation is restricted to admins
			adminApi := protectedApi.Group("/admin")
			adminApi.Use(middleware.RequireRole("admin"))
			{
				adminApi.POST("/products", productController.CreateProduct)
				adminApi.PUT("/products/:id", productController.UpdateProduct)
				adminApi.DELETE("/products/:id", productController.DeleteProduct)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-recetario-api",
	})
}
