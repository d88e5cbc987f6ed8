package usecase

import (
	"shop-loyalty/internal/data/repository"
	"shop-loyalty/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Session SessionService
	Loyalty LoyaltyService
	Order   OrderService
	Product ProductService
	User    UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, log),
		Session: NewSessionService(repo, config, log),
		Loyalty: NewLoyaltyService(repo, log),
		Order:   NewOrderService(repo, log),
		Product: NewProductService(repo, log),
		User:    NewUserService(repo, log),
	}
}
