package request_models

type CreateOrderRequest struct {
	OrderRef     string `json:"order_ref" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	City         string `json:"city" binding:"required"`
}

type UpdateOrderRequest struct {
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number"`
	City         string `json:"city"`
	Status       string `json:"status" binding:"omitempty,oneof=pending shipped delivered"`
}
