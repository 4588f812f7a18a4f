package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/freshbulk/freshbulk/internal/domain/errors"
	"github.com/freshbulk/freshbulk/internal/domain/model"
	"github.com/freshbulk/freshbulk/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place creates an order against an existing product. Quantities of zero or
// less are coerced to one, matching the storefront's minimum order size.
func (u *OrderUseCase) Place(ctx context.Context, customerName, contactNumber, deliveryAddress string, productID int64, quantity decimal.Decimal) (*model.OrderDetails, error) {
	if !quantity.IsPositive() {
		quantity = decimal.NewFromInt(1)
	}
	return u.orders.Create(ctx, customerName, contactNumber, deliveryAddress, productID, quantity)
}

// List returns all orders joined with product fields, newest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.OrderDetails, error) {
	return u.orders.List(ctx)
}

// Get returns a single order joined with product fields.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.OrderDetails, error) {
	return u.orders.GetByID(ctx, id)
}

// UpdateStatus overwrites the order status. Any label from the fixed set is
// accepted regardless of the current status; unknown labels are rejected.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.OrderDetails, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrValidation
	}
	return u.orders.UpdateStatus(ctx, id, status)
}
