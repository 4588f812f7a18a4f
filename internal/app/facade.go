package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/freshbulk/freshbulk/internal/domain/model"
	"github.com/freshbulk/freshbulk/internal/usecase"
)

// Snapshotter exposes the durability operations of the backing store.
type Snapshotter interface {
	Checkpoint(ctx context.Context) error
	Stats() (products, orders int)
	Path() string
}

// StoreFacade aggregates the catalog and order operations consumed by the
// HTTP layer and the checkpoint worker.
type StoreFacade struct {
	catalog   *usecase.CatalogUseCase
	orders    *usecase.OrderUseCase
	snapshots Snapshotter
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, snapshots Snapshotter) *StoreFacade {
	return &StoreFacade{catalog: catalog, orders: orders, snapshots: snapshots}
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StoreFacade) AddProduct(ctx context.Context, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	return f.catalog.Add(ctx, name, price, image, unit)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, id int64, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	return f.catalog.Update(ctx, id, name, price, image, unit)
}

func (f *StoreFacade) RemoveProduct(ctx context.Context, id int64) error {
	return f.catalog.Remove(ctx, id)
}

func (f *StoreFacade) Orders(ctx context.Context) ([]model.OrderDetails, error) {
	return f.orders.List(ctx)
}

func (f *StoreFacade) PlaceOrder(ctx context.Context, customerName, contactNumber, deliveryAddress string, productID int64, quantity decimal.Decimal) (*model.OrderDetails, error) {
	return f.orders.Place(ctx, customerName, contactNumber, deliveryAddress, productID, quantity)
}

func (f *StoreFacade) Order(ctx context.Context, id int64) (*model.OrderDetails, error) {
	return f.orders.Get(ctx, id)
}

func (f *StoreFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.OrderDetails, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

// Checkpoint writes a full-state snapshot outside the shutdown path. Used by
// the optional periodic checkpointer.
func (f *StoreFacade) Checkpoint(ctx context.Context) error {
	return f.snapshots.Checkpoint(ctx)
}

// SnapshotInfo reports the snapshot location and current dataset counts.
func (f *StoreFacade) SnapshotInfo() (path string, products, orders int) {
	products, orders = f.snapshots.Stats()
	return f.snapshots.Path(), products, orders
}
