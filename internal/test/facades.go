package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshbulk/freshbulk/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for product endpoints.
type CatalogFacadeStub struct {
	ProductsFn      func(context.Context) ([]model.Product, error)
	AddProductFn    func(context.Context, string, decimal.Decimal, string, string) (*model.Product, error)
	UpdateProductFn func(context.Context, int64, string, decimal.Decimal, string, string) (*model.Product, error)
	RemoveProductFn func(context.Context, int64) error
}

// Products returns configured products or a single default item.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "Fresh Tomatoes", Price: decimal.RequireFromString("2.99"), Unit: "kg"}}, nil
}

// AddProduct delegates to the provided function or echoes the input.
func (s CatalogFacadeStub) AddProduct(ctx context.Context, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	if s.AddProductFn != nil {
		return s.AddProductFn(ctx, name, price, image, unit)
	}
	return &model.Product{ID: 13, Name: name, Price: price, Image: image, Unit: unit}, nil
}

// UpdateProduct delegates to the provided function or echoes the input.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id int64, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, name, price, image, unit)
	}
	return &model.Product{ID: id, Name: name, Price: price, Image: image, Unit: unit}, nil
}

// RemoveProduct executes the configured handler.
func (s CatalogFacadeStub) RemoveProduct(ctx context.Context, id int64) error {
	if s.RemoveProductFn != nil {
		return s.RemoveProductFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	OrdersFn       func(context.Context) ([]model.OrderDetails, error)
	PlaceOrderFn   func(context.Context, string, string, string, int64, decimal.Decimal) (*model.OrderDetails, error)
	OrderFn        func(context.Context, int64) (*model.OrderDetails, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.OrderDetails, error)
}

// Orders returns configured orders or a single default entry.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.OrderDetails, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.OrderDetails{{
		Order:       model.Order{ID: 1, CustomerName: "A", Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)},
		ProductName: "Fresh Tomatoes",
		Unit:        "kg",
	}}, nil
}

// PlaceOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, customerName, contactNumber, deliveryAddress string, productID int64, quantity decimal.Decimal) (*model.OrderDetails, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, customerName, contactNumber, deliveryAddress, productID, quantity)
	}
	return &model.OrderDetails{Order: model.Order{
		ID:              1,
		CustomerName:    customerName,
		ContactNumber:   contactNumber,
		DeliveryAddress: deliveryAddress,
		ProductID:       productID,
		Quantity:        quantity,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Unix(0, 0),
	}}, nil
}

// Order delegates to the provided function or returns a default order.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.OrderDetails, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.OrderDetails{Order: model.Order{ID: id, Status: model.OrderStatusPending}}, nil
}

// UpdateOrderStatus delegates to the provided function or echoes the input.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.OrderDetails, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.OrderDetails{Order: model.Order{ID: id, Status: status}}, nil
}

// HealthFacadeStub reports fixed snapshot information.
type HealthFacadeStub struct {
	SnapshotPath  string
	ProductCount  int
	OrderCount    int
	SnapshotInfoF func() (string, int, int)
}

// SnapshotInfo returns configured snapshot details.
func (s HealthFacadeStub) SnapshotInfo() (string, int, int) {
	if s.SnapshotInfoF != nil {
		return s.SnapshotInfoF()
	}
	return s.SnapshotPath, s.ProductCount, s.OrderCount
}

// StoreFacadeStub aggregates the stubs for router-level tests.
type StoreFacadeStub struct {
	CatalogFacadeStub
	OrderFacadeStub
	HealthFacadeStub
}
