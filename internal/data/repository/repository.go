package repository

import (
	"shop-loyalty/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Loyalty  LoyaltyRepository
	Order    OrderRepository
	Product  ProductRepository
	Category CategoryRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Loyalty:  NewLoyaltyRepository(db, log),
		Order:    NewOrderRepository(db, log),
		Product:  NewProductRepository(db, log),
		Category: NewCategoryRepository(db, log),
	}
}
