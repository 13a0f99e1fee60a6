package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-stock/internal/application/analytics"
	"github.com/tu-usuario/inventario-stock/internal/application/auth"
	"github.com/tu-usuario/inventario-stock/internal/application/catalog"
	"github.com/tu-usuario/inventario-stock/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CategoryUC  *catalog.CategoryUseCase
	ProductUC   *catalog.ProductUseCase
	AdjustStock *inventory.AdjustStockUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Todo salvo register/login (y /health,
// registrado en main) exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (público)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Get("/products", productHandler.ListRefs)
	invGroup.Post("/update", inventoryHandler.AdjustStock)
	invGroup.Get("/dashboard", dashboardHandler.GetSummary)
}
