package request

type FindCustomerRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

type StampRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}

type RedeemRequest struct {
	CustomerID string `json:"customer_id" validate:"required,uuid"`
}
