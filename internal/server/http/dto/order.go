package dto

import "time"

// OrderRequest carries a customer order submission.
type OrderRequest struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	ContactNumber   string  `json:"contact_number" binding:"required"`
	DeliveryAddress string  `json:"delivery_address" binding:"required"`
	ProductID       int64   `json:"product_id" binding:"required"`
	Quantity        float64 `json:"quantity"`
}

// OrderStatusRequest carries an admin status change.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderResponse describes an order joined with its product fields. The
// product fields are empty when the product has since been deleted.
type OrderResponse struct {
	ID              int64     `json:"id"`
	CustomerName    string    `json:"customer_name"`
	ContactNumber   string    `json:"contact_number"`
	DeliveryAddress string    `json:"delivery_address"`
	ProductID       int64     `json:"product_id"`
	Quantity        float64   `json:"quantity"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	TotalPrice      float64   `json:"total_price"`
	ProductName     string    `json:"product_name"`
	Unit            string    `json:"unit"`
	ProductImage    string    `json:"product_image,omitempty"`
}

// ErrorResponse is the failure body shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
