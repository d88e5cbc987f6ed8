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

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// GetCatalog handles GET /api/catalog
func (h *ProductHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.GetCatalog(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get catalog")
		return
	}

	utils.ResponseSuccess(w, "Catalog", catalog)
}

// CreateCategory handles POST /api/admin/categories
func (h *ProductHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created", category)
}

// UpdateCategory handles PUT /api/admin/categories/{id}
func (h *ProductHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated", category)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}
func (h *ProductHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		handleServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted", nil)
}

// CreateProduct handles POST /api/admin/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created", product)
}

// UpdateProduct handles PUT /api/admin/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated", product)
}

// DeleteProduct handles DELETE /api/admin/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted", nil)
}
