package request

type CreateOrderRequest struct {
	Product    string `json:"product" validate:"required,min=1,max=100"`
	Details    string `json:"details" validate:"required,min=1"`
	PickupDate string `json:"pickup_date" validate:"required,datetime=2006-01-02"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending ready collected"`
}
