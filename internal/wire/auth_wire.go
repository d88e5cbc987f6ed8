package wire

import (
	"shop-loyalty/internal/adaptor"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	sessions usecase.SessionService,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(sessions, log)).Post("/api/logout", authHandler.Logout)
}
