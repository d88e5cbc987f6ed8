package adaptor

import (
	"encoding/json"
	"net/http"

	"shop-loyalty/internal/dto/request"
	"shop-loyalty/internal/dto/response"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth     usecase.AuthService
	sessions usecase.SessionService
	log      *zap.Logger
}

func NewAuthHandler(auth usecase.AuthService, sessions usecase.SessionService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		log:      log,
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.auth.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	// New accounts are logged in right away
	session, err := h.sessions.Create(r.Context(), w, user)
	if err != nil {
		handleServiceError(w, h.log, err, "create session")
		return
	}

	utils.ResponseCreated(w, "Registration successful", response.AuthResponse{
		UserID:    user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: session.ExpiresAt,
	})
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	session, err := h.sessions.Create(r.Context(), w, user)
	if err != nil {
		handleServiceError(w, h.log, err, "create session")
		return
	}

	// Role in the response tells the client where to route:
	// admin dashboard, scanner, or customer dashboard
	utils.ResponseSuccess(w, "Login successful", response.AuthResponse{
		UserID:    user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(r.Context(), w, r)
	utils.ResponseSuccess(w, "Logout successful", nil)
}
