package order

// CreateOrderItem payload of one requested item.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID string `json:"product_id" binding:"required" example:"66b2f4a19c3d7e0412a8b901"`
	Qty       int    `json:"qty"        binding:"required,gte=1" example:"3"`
}

// CreateOrderRequest payload of order placement.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName string            `json:"customer_name" binding:"required" example:"Ana García"`
	Phone        string            `json:"phone"         binding:"required" example:"+34 600 123 456"`
	SlotID       string            `json:"slot_id"       binding:"required" example:"66b2f4a19c3d7e0412a8b9ff"`
	Items        []CreateOrderItem `json:"items"         binding:"required,min=1,dive"`
	Note         string            `json:"note,omitempty" example:"ring the bell twice"`
}

// CreateOrderResponse is returned on successful placement.
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	OrderID string  `json:"order_id"`
	Total   float64 `json:"total"`
	Status  string  `json:"status"`
}
