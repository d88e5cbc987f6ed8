package adaptor

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Loyalty *LoyaltyHandler
	Order   *OrderHandler
	Product *ProductHandler
	User    *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, service.Session, log),
		Loyalty: NewLoyaltyHandler(service.Loyalty, log),
		Order:   NewOrderHandler(service.Order, log),
		Product: NewProductHandler(service.Product, log),
		User:    NewUserHandler(service.User, log),
	}
}

// handleServiceError maps service errors onto HTTP responses. Anything
// outside the known taxonomy is an upstream failure: logged with detail,
// answered with a generic message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, utils.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, utils.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, utils.ErrWrongRole):
		log.Warn(operation+" failed - wrong role", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, utils.ErrAlreadyExists):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, utils.ErrNoRewardsAvailable):
		log.Warn(operation+" failed - no rewards", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, utils.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, utils.ErrUnauthenticated):
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, utils.ErrUnauthorized):
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func parsePositiveInt(value string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if parsed < 1 {
		return 0, fmt.Errorf("value %d is not positive", parsed)
	}
	return parsed, nil
}
