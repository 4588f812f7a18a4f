package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/freshbulk/freshbulk/internal/domain/errors"
	"github.com/freshbulk/freshbulk/internal/domain/model"
)

// ProductRepositoryStub keeps products in a plain slice for graph tests.
type ProductRepositoryStub struct {
	mu    sync.Mutex
	next  int64
	Items []model.Product
}

// NewProductRepositoryStub seeds the stub with the given products.
func NewProductRepositoryStub(items ...model.Product) *ProductRepositoryStub {
	stub := &ProductRepositoryStub{Items: items}
	for _, p := range items {
		if p.ID > stub.next {
			stub.next = p.ID
		}
	}
	return stub
}

func (s *ProductRepositoryStub) List(context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Product(nil), s.Items...), nil
}

func (s *ProductRepositoryStub) GetByID(_ context.Context, id int64) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.Items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) Create(_ context.Context, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	p := model.Product{ID: s.next, Name: name, Price: price, Image: image, Unit: unit}
	s.Items = append(s.Items, p)
	return &p, nil
}

func (s *ProductRepositoryStub) Update(_ context.Context, id int64, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.Items {
		if p.ID == id {
			s.Items[i] = model.Product{ID: id, Name: name, Price: price, Image: image, Unit: unit}
			return &s.Items[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.Items {
		if p.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// OrderRepositoryStub records placed orders for graph tests.
type OrderRepositoryStub struct {
	mu    sync.Mutex
	next  int64
	Items []model.OrderDetails
}

func (s *OrderRepositoryStub) List(context.Context) ([]model.OrderDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderDetails(nil), s.Items...), nil
}

func (s *OrderRepositoryStub) GetByID(_ context.Context, id int64) (*model.OrderDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.Items {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) Create(_ context.Context, customerName, contactNumber, deliveryAddress string, productID int64, quantity decimal.Decimal) (*model.OrderDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	o := model.OrderDetails{Order: model.Order{
		ID:              s.next,
		CustomerName:    customerName,
		ContactNumber:   contactNumber,
		DeliveryAddress: deliveryAddress,
		ProductID:       productID,
		Quantity:        quantity,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}}
	s.Items = append(s.Items, o)
	return &o, nil
}

func (s *OrderRepositoryStub) UpdateStatus(_ context.Context, id int64, status model.OrderStatus) (*model.OrderDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.Items {
		if o.ID == id {
			s.Items[i].Status = status
			return &s.Items[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SnapshotterStub records checkpoint requests.
type SnapshotterStub struct {
	mu          sync.Mutex
	Checkpoints int
	Err         error
	PathValue   string
}

func (s *SnapshotterStub) Checkpoint(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Checkpoints++
	return s.Err
}

func (s *SnapshotterStub) Stats() (int, int) {
	return 0, 0
}

func (s *SnapshotterStub) Path() string {
	return s.PathValue
}
