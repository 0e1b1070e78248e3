package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lmoralesv/gin-recetario-api/internal/costing"
	"github.com/lmoralesv/gin-recetario-api/internal/database"
	"github.com/lmoralesv/gin-recetario-api/internal/models"
)

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "recetario.sqlite", "Path to the sqlite database file")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	admin := seedAdminUser(db)
	products := seedCatalog(db)
	recipe := seedDemoRecipe(db, admin.ID, products)
	plan := seedDemoMenu(db, admin.ID, recipe)

	fmt.Println("✓ Demo data seeded!")
	fmt.Printf("Admin login: %s / %s\n", admin.Email, "recetario123")
	fmt.Printf("Recipe: %s (id %s, total cost %.2f)\n", recipe.Name, recipe.ID, recipe.TotalCost)
	fmt.Printf("Menu plan: %s (id %s)\n", plan.Title, plan.ID)
	fmt.Println("\nTry the shopping list:")
	fmt.Printf("curl -H 'Authorization: Bearer <token>' http://localhost:8080/api/v1/protected/menus/%s/shopping-list\n", plan.ID)
}

func seedAdminUser(db *gorm.DB) models.User {
	var user models.User
	if err := db.Where("email = ?", "admin@recetario.local").First(&user).Error; err == nil {
		fmt.Printf("Found existing admin: %s (ID: %d)\n", user.Email, user.ID)
		return user
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("recetario123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}
	user = models.User{
		Email:    "admin@recetario.local",
		Name:     "Admin",
		Password: string(hash),
		Role:     "admin",
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}
	return user
}

func seedCatalog(db *gorm.DB) []models.Product {
	products := []models.Product{
		{Name: "CEBOLLA", Family: "VERDURAS", Unit: "kg", PricePerUnit: 0.95},
		{Name: "TOMATE", Family: "VERDURAS", Unit: "kg", PricePerUnit: 1.80},
		{Name: "ACEITE DE OLIVA", Family: "ACEITES", Unit: "l", PricePerUnit: 4.50, Allergens: nil},
		{Name: "HARINA", Family: "SECOS", Unit: "kg", PricePerUnit: 0.70, Allergens: []models.Allergen{models.AllergenGluten}},
		{Name: "HUEVO", Family: "HUEVOS", Unit: "unidad", PricePerUnit: 0.20, Allergens: []models.Allergen{models.AllergenHuevos}},
		{Name: "LECHE", Family: "LACTEOS", Unit: "l", PricePerUnit: 0.90, Allergens: []models.Allergen{models.AllergenLacteos}},
		{Name: "PEREJIL", Family: "VERDURAS", Unit: "manojo", PricePerUnit: 0.80},
	}
	for i := range products {
		var existing models.Product
		if err := db.Where("name = ?", products[i].Name).First(&existing).Error; err == nil {
			products[i] = existing
			continue
		}
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatal("Failed to seed product:", err)
		}
	}
	return products
}

func seedDemoRecipe(db *gorm.DB, ownerID uint, products []models.Product) models.Recipe {
	var existing models.Recipe
	if err := db.Where("name = ?", "SOFRITO").First(&existing).Error; err == nil {
		fmt.Println("Demo recipe already exists")
		return existing
	}

	recipe := models.Recipe{
		Name:          "SOFRITO",
		Categories:    []string{"BASES"},
		YieldQuantity: 4,
		YieldUnit:     "raciones",
		IsPublic:      true,
		OwnerID:       ownerID,
		SubRecipes: []models.SubRecipe{
			{
				Name: "Base",
				Ingredients: []models.Ingredient{
					{Name: "CEBOLLA", Quantity: "500", Unit: "g"},
					{Name: "TOMATE", Quantity: "0,5", Unit: "kg"},
					{Name: "ACEITE DE OLIVA", Quantity: "1", Unit: "dl"},
					{Name: "PEREJIL", Quantity: "1", Unit: "manojo"},
				},
				Instructions: "Pochar la cebolla, añadir el tomate y reducir.",
			},
		},
	}
	costing.SyncRecipe(&recipe, costing.NewCatalogIndex(products))
	if err := db.Create(&recipe).Error; err != nil {
		log.Fatal("Failed to seed recipe:", err)
	}
	return recipe
}

func seedDemoMenu(db *gorm.DB, ownerID uint, recipe models.Recipe) models.MenuPlan {
	var existing models.MenuPlan
	if err := db.Where("title = ?", "Servicio de prueba").First(&existing).Error; err == nil {
		fmt.Println("Demo menu plan already exists")
		return existing
	}

	plan := models.MenuPlan{
		Title:   "Servicio de prueba",
		Pax:     8,
		OwnerID: ownerID,
		Recipes: []models.MenuRecipeReference{
			{RecipeID: recipe.ID, Pax: 8},
		},
		ExtraOrderItems: []models.OrderItem{
			{Name: "SERVILLETAS", Quantity: "200", Unit: "ud", Family: "MENAJE"},
		},
	}
	if err := db.Create(&plan).Error; err != nil {
		log.Fatal("Failed to seed menu plan:", err)
	}
	return plan
}
