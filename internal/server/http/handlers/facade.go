package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/freshbulk/freshbulk/internal/domain/model"
)

// CatalogFacade encapsulates the product operations exposed via HTTP.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	AddProduct(ctx context.Context, name string, price decimal.Decimal, image, unit string) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, name string, price decimal.Decimal, image, unit string) (*model.Product, error)
	RemoveProduct(ctx context.Context, id int64) error
}

// OrderFacade encapsulates the order operations exposed via HTTP.
type OrderFacade interface {
	Orders(ctx context.Context) ([]model.OrderDetails, error)
	PlaceOrder(ctx context.Context, customerName, contactNumber, deliveryAddress string, productID int64, quantity decimal.Decimal) (*model.OrderDetails, error)
	Order(ctx context.Context, id int64) (*model.OrderDetails, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.OrderDetails, error)
}

// HealthFacade reports store durability state.
type HealthFacade interface {
	SnapshotInfo() (path string, products, orders int)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	CatalogFacade
	OrderFacade
	HealthFacade
}
