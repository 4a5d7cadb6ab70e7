package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/lankipolo123/styleHive-server/authentication/routes"
	"github.com/lankipolo123/styleHive-server/config"
	"github.com/lankipolo123/styleHive-server/controllers"
	"github.com/lankipolo123/styleHive-server/database"
	"github.com/lankipolo123/styleHive-server/repositories"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	categoryStore := repositories.NewGormCategoryStore(db)
	productStore := repositories.NewGormProductStore(db)
	userStore := repositories.NewGormUserStore(db)
	orderStore := repositories.NewGormOrderStore(db)

	routes.SetupRoutes(app, cfg, routes.Controllers{
		Categories: controllers.NewCategoryController(categoryStore),
		Products:   controllers.NewProductController(productStore, categoryStore, cfg.UploadDir),
		Users:      controllers.NewUserController(userStore, cfg.JWTSecret),
		Orders:     controllers.NewOrderController(orderStore, productStore),
	})

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
