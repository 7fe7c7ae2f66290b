package structs

import "github.com/google/uuid"

// OrderItemRequest is a single line of a checkout request. Price is the unit
// price in cents as quoted to the customer at checkout time.
type OrderItemRequest struct {
	Id       uuid.UUID `json:"id"`
	Quantity int       `json:"quantity"`
	Price    uint64    `json:"price"`
}

type OrderRequest struct {
	CustomerEmail string             `json:"customer_email"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	Items         []OrderItemRequest `json:"items"`
	TotalAmount   uint64             `json:"total_amount"`
}

type OrderResponse struct {
	OrderId     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
}
