package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalog-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC CategoryService
	ProductUC  ProductService
	Pages      PageDefaults
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestLogger(deps.Log))
	}

	api := app.Group("/api")
	public := api.Group("/public")
	admin := api.Group("/admin")

	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Pages)
	productHandler := NewProductHandler(deps.ProductUC, deps.Pages)

	// Categories
	public.Get("/categories", categoryHandler.List)
	public.Post("/categories", categoryHandler.Create)
	public.Put("/categories/:categoryId", categoryHandler.Update)
	admin.Delete("/categories/:categoryId", categoryHandler.Delete)

	// Products
	admin.Post("/categories/:categoryId/product", productHandler.Add)
	public.Get("/products", productHandler.List)
	public.Get("/categories/:categoryId/products", productHandler.SearchByCategory)
	public.Get("/categories/:categoryId/products/pdf", productHandler.PriceList)
	public.Get("/products/keyword/:keyword", productHandler.SearchByKeyword)
	admin.Put("/products/:productId", productHandler.Update)
	admin.Delete("/products/:productId", productHandler.Delete)
	api.Put("/products/:productId/image", productHandler.UpdateImage)
}
