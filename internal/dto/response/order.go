package response

import (
	"time"

	"shop-loyalty/internal/data/entity"
)

type OrderResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	Product      string             `json:"product"`
	Details      string             `json:"details"`
	PickupDate   string             `json:"pickup_date"`
	Status       entity.OrderStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID.String(),
		CustomerID:   order.CustomerID.String(),
		CustomerName: order.CustomerName,
		Product:      order.Product,
		Details:      order.Details,
		PickupDate:   order.PickupDate.Format("2006-01-02"),
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderToResponse(order))
	}
	return out
}
