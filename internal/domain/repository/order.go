package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/freshbulk/freshbulk/internal/domain/model"
)

// OrderRepository describes persistence operations for orders. Create owns
// the whole placement step: it resolves the product, freezes the total at
// the product's current price, and inserts in one atomic operation.
type OrderRepository interface {
	List(ctx context.Context) ([]model.OrderDetails, error)
	GetByID(ctx context.Context, id int64) (*model.OrderDetails, error)
	Create(ctx context.Context, customerName, contactNumber, deliveryAddress string, productID int64, quantity decimal.Decimal) (*model.OrderDetails, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.OrderDetails, error)
}
