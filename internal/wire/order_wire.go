package wire

import (
	"shop-loyalty/internal/adaptor"
	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	sessions usecase.SessionService,
	log *zap.Logger,
) {
	// ==================== CUSTOMER ROUTES ====================
	r.With(
		middleware.AuthSession(sessions, log),
		middleware.RequireRole(log, entity.RoleCustomer),
	).Route("/api/orders", func(r chi.Router) {
		r.Post("/", orderHandler.PlaceOrder)
		r.Get("/", orderHandler.GetMyOrders)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.AuthSession(sessions, log),
		middleware.RequireRole(log, entity.RoleAdmin),
	).Route("/api/admin/orders", func(r chi.Router) {
		r.Get("/", orderHandler.GetAllOrders)
		r.Patch("/{id}/status", orderHandler.UpdateStatus)
	})
}
