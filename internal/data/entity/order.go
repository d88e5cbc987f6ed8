package entity

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCollected OrderStatus = "collected"
)

func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusReady, OrderStatusCollected:
		return true
	}
	return false
}

// Order is a customer pre-order for pickup in the shop.
type Order struct {
	BaseNoDelete
	CustomerID   uuid.UUID   `db:"customer_id"`
	CustomerName string      `db:"customer_name"`
	Product      string      `db:"product"`
	Details      string      `db:"details"`
	PickupDate   time.Time   `db:"pickup_date"`
	Status       OrderStatus `db:"status"`
}
