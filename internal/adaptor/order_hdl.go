package adaptor

import (
	"encoding/json"
	"net/http"

	"shop-loyalty/internal/dto/request"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	customerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), customerID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "place order")
		return
	}

	utils.ResponseCreated(w, "Order placed", order)
}

// GetMyOrders handles GET /api/orders
func (h *OrderHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orders, err := h.service.GetCustomerOrders(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.log, err, "get orders")
		return
	}

	utils.ResponseSuccess(w, "Orders", orders)
}

// GetAllOrders handles GET /api/admin/orders?page=1&per_page=10
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	req := paginationFromQuery(r)

	orders, err := h.service.GetAllOrders(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get all orders")
		return
	}

	utils.ResponseSuccess(w, "Orders", orders)
}

// UpdateStatus handles PATCH /api/admin/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), orderID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated", order)
}

func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	page := 1
	perPage := 10

	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := parsePositiveInt(v); err == nil {
			page = parsed
		}
	}
	if v := r.URL.Query().Get("per_page"); v != "" {
		if parsed, err := parsePositiveInt(v); err == nil {
			perPage = parsed
		}
	}

	return &request.PaginatedRequest{Page: page, PerPage: perPage}
}
