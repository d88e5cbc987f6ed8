package wire

import (
	"shop-loyalty/internal/adaptor"
	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireLoyalty gates the scanner to employees, the loyalty card to the
// logged-in customer and the activity chart to admins.
func wireLoyalty(
	r chi.Router,
	loyaltyHandler *adaptor.LoyaltyHandler,
	sessions usecase.SessionService,
	log *zap.Logger,
) {
	// ==================== EMPLOYEE SCANNER ROUTES ====================
	r.With(
		middleware.AuthSession(sessions, log),
		middleware.RequireRole(log, entity.RoleEmployee),
	).Route("/api/scanner/customers/{id}", func(r chi.Router) {
		r.Get("/", loyaltyHandler.FindCustomer)
		r.Post("/stamp", loyaltyHandler.ApplyStamp)
		r.Post("/redeem", loyaltyHandler.RedeemReward)
	})

	// ==================== CUSTOMER DASHBOARD ====================
	r.With(
		middleware.AuthSession(sessions, log),
		middleware.RequireRole(log, entity.RoleCustomer),
	).Get("/api/loyalty", loyaltyHandler.GetLoyalty)

	// ==================== ADMIN ====================
	r.With(
		middleware.AuthSession(sessions, log),
		middleware.RequireRole(log, entity.RoleAdmin),
	).Get("/api/admin/activity", loyaltyHandler.GetActivity)
}
