package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes delivery progress. The label set is fixed but
// transitions between labels are unconstrained.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusInProgress OrderStatus = "In Progress"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// ValidOrderStatus reports whether s belongs to the fixed label set.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is a customer purchase of a single product. TotalPrice is frozen at
// creation from the product price current at that moment and is never
// recomputed, even if the product is later repriced or deleted.
type Order struct {
	ID              int64           `json:"id"`
	CustomerName    string          `json:"customer_name"`
	ContactNumber   string          `json:"contact_number"`
	DeliveryAddress string          `json:"delivery_address"`
	ProductID       int64           `json:"product_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

// OrderDetails is an order joined with descriptive fields of its product.
// The product fields are empty when the product has been deleted since the
// order was placed.
type OrderDetails struct {
	Order
	ProductName  string `json:"product_name"`
	Unit         string `json:"unit"`
	ProductImage string `json:"product_image"`
}
