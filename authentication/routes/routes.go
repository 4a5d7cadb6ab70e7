package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lankipolo123/styleHive-server/authentication/middleware"
	"github.com/lankipolo123/styleHive-server/config"
	"github.com/lankipolo123/styleHive-server/controllers"
)

// Controllers bundles the entity handlers SetupRoutes mounts.
type Controllers struct {
	Categories *controllers.CategoryController
	Products   *controllers.ProductController
	Users      *controllers.UserController
	Orders     *controllers.OrderController
}

// SetupRoutes registers the authorization middleware, the static upload
// directory and every entity route group under the configured API prefix.
func SetupRoutes(app *fiber.App, cfg *config.Config, ctrls Controllers) {
	app.Use(middleware.JwtAuthMiddleware(middleware.AuthConfig{
		Secret:    cfg.JWTSecret,
		APIPrefix: cfg.APIPrefix,
	}))

	app.Static("/public/uploads", cfg.UploadDir)

	api := app.Group(cfg.APIPrefix)

	categories := api.Group("/categories")
	categories.Get("/", ctrls.Categories.GetCategories)
	categories.Get("/:id", ctrls.Categories.GetCategory)
	categories.Post("/", ctrls.Categories.CreateCategory)
	categories.Put("/:id", ctrls.Categories.UpdateCategory)
	categories.Delete("/:id", ctrls.Categories.DeleteCategory)

	products := api.Group("/products")
	products.Get("/", ctrls.Products.GetProducts)
	products.Get("/get/count", ctrls.Products.GetProductCount)
	products.Get("/get/featured/:count", ctrls.Products.GetFeaturedProducts)
	products.Get("/:id", ctrls.Products.GetProduct)
	products.Post("/", ctrls.Products.CreateProduct)
	products.Put("/gallery-images/:id", ctrls.Products.UpdateGallery)
	products.Put("/:id", ctrls.Products.UpdateProduct)
	products.Delete("/:id", ctrls.Products.DeleteProduct)

	users := api.Group("/users")
	users.Get("/", ctrls.Users.GetUsers)
	users.Get("/get/count", ctrls.Users.GetUserCount)
	users.Get("/:id", ctrls.Users.GetUser)
	users.Post("/", ctrls.Users.CreateUser)
	users.Post("/login", ctrls.Users.Login)
	users.Post("/register", ctrls.Users.Register)
	users.Put("/:id", ctrls.Users.UpdateUser)
	users.Delete("/:id", ctrls.Users.DeleteUser)

	orders := api.Group("/orders")
	orders.Get("/", ctrls.Orders.GetOrders)
	orders.Get("/get/totalsales", ctrls.Orders.GetTotalSales)
	orders.Get("/get/count", ctrls.Orders.GetOrderCount)
	orders.Get("/get/userorders/:userid", ctrls.Orders.GetUserOrders)
	orders.Get("/:id", ctrls.Orders.GetOrder)
	orders.Post("/", ctrls.Orders.CreateOrder)
	orders.Put("/:id", ctrls.Orders.UpdateOrder)
	orders.Delete("/:id", ctrls.Orders.DeleteOrder)
}
