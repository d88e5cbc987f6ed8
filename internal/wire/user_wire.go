package wire

import (
	"shop-loyalty/internal/adaptor"
	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	sessions usecase.SessionService,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(
		middleware.AuthSession(sessions, log),
	).Route("/api/user/profile", func(r chi.Router) {
		r.Get("/", userHandler.GetProfile)
		r.Put("/", userHandler.UpdateProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(
		middleware.AuthSession(sessions, log),
		middleware.RequireRole(log, entity.RoleAdmin),
	).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
