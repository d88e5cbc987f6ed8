package wire

import (
	"shop-loyalty/internal/adaptor"
	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	sessions usecase.SessionService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Customers browse the catalog before logging in
	r.Get("/api/catalog", productHandler.GetCatalog)

	// ==================== ADMIN ROUTES ====================
	admin := r.With(
		middleware.AuthSession(sessions, log),
		middleware.RequireRole(log, entity.RoleAdmin),
	)

	admin.Route("/api/admin/categories", func(r chi.Router) {
		r.Post("/", productHandler.CreateCategory)
		r.Put("/{id}", productHandler.UpdateCategory)
		r.Delete("/{id}", productHandler.DeleteCategory)
	})

	admin.Route("/api/admin/products", func(r chi.Router) {
		r.Post("/", productHandler.CreateProduct)
		r.Put("/{id}", productHandler.UpdateProduct)
		r.Delete("/{id}", productHandler.DeleteProduct)
	})
}
