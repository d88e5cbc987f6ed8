package middleware

import (
	"net/http"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the session cookie and puts the user's identity
// and role on the request context. Missing, expired and tampered cookies
// are all rejected the same way.
func AuthSession(sessions usecase.SessionService, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := sessions.Verify(r.Context(), r)
			if err != nil {
				logger.Error("Failed to verify session",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID, string(session.Role))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route to the given roles. It runs after AuthSession
// and reads the role that middleware stored on the context.
func RequireRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, allowed := range roles {
				if entity.UserRole(role) == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			userID, _ := utils.GetUserIDFromContext(r.Context())
			logger.Warn("Role gate rejected request",
				zap.String("user_id", userID.String()),
				zap.String("role", role),
				zap.String("path", r.URL.Path),
			)
			utils.ResponseForbidden(w, "Insufficient permissions")
		})
	}
}
