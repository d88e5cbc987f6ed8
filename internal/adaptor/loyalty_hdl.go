package adaptor

import (
	"net/http"

	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LoyaltyHandler struct {
	service usecase.LoyaltyService
	log     *zap.Logger
}

func NewLoyaltyHandler(service usecase.LoyaltyService, log *zap.Logger) *LoyaltyHandler {
	return &LoyaltyHandler{
		service: service,
		log:     log,
	}
}

// FindCustomer handles GET /api/scanner/customers/{id}
func (h *LoyaltyHandler) FindCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	customer, err := h.service.FindCustomer(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "find customer")
		return
	}

	utils.ResponseSuccess(w, "Customer found", customer)
}

// ApplyStamp handles POST /api/scanner/customers/{id}/stamp
func (h *LoyaltyHandler) ApplyStamp(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	employeeID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	result, err := h.service.ApplyStamp(r.Context(), employeeID, customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "apply stamp")
		return
	}

	message := "Stamp applied"
	if result.Reward != nil {
		message = "Stamp applied, reward earned"
	}

	utils.ResponseSuccess(w, message, result)
}

// RedeemReward handles POST /api/scanner/customers/{id}/redeem
func (h *LoyaltyHandler) RedeemReward(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")

	reward, err := h.service.RedeemReward(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "redeem reward")
		return
	}

	utils.ResponseSuccess(w, "Reward redeemed", reward)
}

// GetLoyalty handles GET /api/loyalty — the logged-in customer's
// points and rewards.
func (h *LoyaltyHandler) GetLoyalty(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	loyalty, err := h.service.GetLoyalty(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get loyalty")
		return
	}

	utils.ResponseSuccess(w, "Loyalty card", loyalty)
}

// GetActivity handles GET /api/admin/activity
func (h *LoyaltyHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.service.GetActivity(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get activity")
		return
	}

	utils.ResponseSuccess(w, "Stamp activity", activity)
}
