package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-loyalty/internal/data/entity"
	"shop-loyalty/internal/data/repository"
	"shop-loyalty/internal/dto/request"
	"shop-loyalty/internal/dto/response"
	"shop-loyalty/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, customerID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]response.OrderResponse, error)
	GetAllOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, customerID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Place order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	pickupDate, err := time.Parse("2006-01-02", req.PickupDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pickup date", utils.ErrValidation)
	}

	// 2. Resolve customer for the denormalized name on the order
	customer, err := s.repo.User.FindByID(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, utils.ErrNotFound
	}

	// 3. Create order
	now := time.Now()
	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Product:      req.Product,
		Details:      req.Details,
		PickupDate:   pickupDate,
		Status:       entity.OrderStatusPending,
	}

	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("product", order.Product),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]response.OrderResponse, error) {
	orders, err := s.repo.Order.FindByCustomer(ctx, customerID)
	if err != nil {
		s.log.Error("Failed to load customer orders", zap.Error(err), zap.String("customer_id", customerID.String()))
		return nil, fmt.Errorf("load orders: %w", err)
	}

	return response.OrdersToResponse(orders), nil
}

func (s *orderService) GetAllOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	orders, err := s.repo.Order.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to load orders", zap.Error(err))
		return nil, fmt.Errorf("load orders: %w", err)
	}

	total, err := s.repo.Order.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("count orders: %w", err)
	}

	return response.NewPaginatedResponse(response.OrdersToResponse(orders), req.Page, req.Limit(), total), nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", utils.ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid order ID", utils.ErrValidation)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: order not found", utils.ErrNotFound)
	}

	status := entity.OrderStatus(req.Status)
	if err := s.repo.Order.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update order status", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("update status: %w", err)
	}

	order.Status = status
	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}
