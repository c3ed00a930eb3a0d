package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/catalog"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	UserUC     *usecase.UserUseCase
	CatalogUC  *catalog.UseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Las lecturas de catálogo son públicas
// (vitrina); las mutaciones y los listados de usuarios exigen rol ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authn := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Users: perfil propio solo autenticado; listado solo ADMIN
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	users.Get("/me", authn, userHandler.Me)
	users.Get("/", authn, adminOnly, userHandler.List)

	// Categories: lectura pública, mutación ADMIN
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", authn, adminOnly, categoryHandler.Create)
	categories.Patch("/:id", authn, adminOnly, categoryHandler.Update)
	categories.Delete("/:id", authn, adminOnly, categoryHandler.Delete)

	// Products: lectura y búsqueda públicas, mutación ADMIN
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/search/:name?", productHandler.Search)
	products.Get("/category/:categoryId", productHandler.ListByCategory)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authn, adminOnly, productHandler.Create)
	products.Patch("/:id", authn, adminOnly, productHandler.Update)
	products.Delete("/:id", authn, adminOnly, productHandler.Delete)
}
