package repository

import (
	"context"
	"fmt"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, customer_name, product, details,
		                    pickup_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.CustomerName,
		order.Product,
		order.Details,
		order.PickupDate,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("customer_id", order.CustomerID.String()),
		)
		return fmt.Errorf("create order for %s: %w", order.CustomerID.String(), err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, customer_name, product, details,
		       pickup_date, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerID,
		&order.CustomerName,
		&order.Product,
		&order.Details,
		&order.PickupDate,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

func (r *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, customer_name, product, details,
		       pickup_date, status, created_at, updated_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to get customer orders",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find orders for customer %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	return scanOrders(rows, r.log)
}

func (r *orderRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, customer_id, customer_name, product, details,
		       pickup_date, status, created_at, updated_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get all orders",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all orders limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return scanOrders(rows, r.log)
}

func (r *orderRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Database error counting orders", zap.Error(err))
		return 0, fmt.Errorf("count all orders: %w", err)
	}

	return count, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	return nil
}

func scanOrders(rows pgx.Rows, log *zap.Logger) ([]*entity.Order, error) {
	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.CustomerName,
			&order.Product,
			&order.Details,
			&order.PickupDate,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}
