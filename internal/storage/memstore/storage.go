package memstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/freshbulk/freshbulk/internal/domain/errors"
	"github.com/freshbulk/freshbulk/internal/domain/model"
	"github.com/freshbulk/freshbulk/internal/domain/repository"
)

// Storage acts as repository facade over the in-memory dataset. The whole
// dataset lives in process memory; the snapshot file on disk is rewritten
// only at bootstrap, at graceful shutdown, and on explicit Checkpoint calls.
// One RWMutex serializes every operation, so each repository call is atomic
// with respect to the dataset.
type Storage struct {
	mu     sync.RWMutex
	path   string
	logger *slog.Logger

	products   map[int64]model.Product
	orders     map[int64]model.Order
	productSeq int64
	orderSeq   int64
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New loads the snapshot at path into memory. When no snapshot exists the
// store is seeded with the initial catalog and a first snapshot is written
// immediately, so a crash right after first start still finds the seed data.
func New(path string, logger *slog.Logger) (*Storage, error) {
	s := &Storage{
		path:     path,
		logger:   logger,
		products: make(map[int64]model.Product),
		orders:   make(map[int64]model.Order),
	}

	snap, err := readSnapshot(path)
	switch {
	case err == nil:
		s.restore(snap)
		logger.Info("snapshot loaded",
			slog.String("path", path),
			slog.Int("products", len(s.products)),
			slog.Int("orders", len(s.orders)),
		)
	case errors.Is(err, fs.ErrNotExist):
		for _, p := range seedCatalog() {
			s.products[p.ID] = p
			if p.ID > s.productSeq {
				s.productSeq = p.ID
			}
		}
		if err := s.Checkpoint(context.Background()); err != nil {
			return nil, err
		}
		logger.Info("store bootstrapped", slog.String("path", path), slog.Int("products", len(s.products)))
	default:
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	return s, nil
}

func (s *Storage) restore(snap *snapshot) {
	for _, p := range snap.Products {
		s.products[p.ID] = p
		if p.ID > s.productSeq {
			s.productSeq = p.ID
		}
	}
	for _, o := range snap.Orders {
		s.orders[o.ID] = o
		if o.ID > s.orderSeq {
			s.orderSeq = o.ID
		}
	}
	if snap.ProductSeq > s.productSeq {
		s.productSeq = snap.ProductSeq
	}
	if snap.OrderSeq > s.orderSeq {
		s.orderSeq = snap.OrderSeq
	}
}

// Checkpoint writes the complete dataset to the snapshot file. The write is
// all-or-nothing: an interrupted checkpoint leaves the previous snapshot
// untouched.
func (s *Storage) Checkpoint(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	snap := s.export()
	s.mu.RUnlock()

	if err := writeSnapshot(s.path, snap); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *Storage) export() *snapshot {
	snap := &snapshot{
		Products:   make([]model.Product, 0, len(s.products)),
		Orders:     make([]model.Order, 0, len(s.orders)),
		ProductSeq: s.productSeq,
		OrderSeq:   s.orderSeq,
	}
	for _, p := range s.products {
		snap.Products = append(snap.Products, p)
	}
	for _, o := range s.orders {
		snap.Orders = append(snap.Orders, o)
	}
	sort.Slice(snap.Products, func(i, j int) bool { return snap.Products[i].ID < snap.Products[j].ID })
	sort.Slice(snap.Orders, func(i, j int) bool { return snap.Orders[i].ID < snap.Orders[j].ID })
	return snap
}

// Path returns the snapshot file location.
func (s *Storage) Path() string {
	return s.path
}

// Stats returns current product and order counts.
func (s *Storage) Stats() (products, orders int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products), len(s.orders)
}

// Factory methods for domain repositories.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// --- ProductRepository implementation ---

func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productSeq++
	p := model.Product{
		ID:    s.productSeq,
		Name:  name,
		Price: price,
		Image: image,
		Unit:  unit,
	}
	s.products[p.ID] = p
	return &p, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	p := model.Product{ID: id, Name: name, Price: price, Image: image, Unit: unit}
	s.products[id] = p
	return &p, nil
}

// Delete removes the product without checking for referencing orders; such
// orders keep their frozen totals and a dangling product reference.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

// --- OrderRepository implementation ---

// join attaches product fields to an order. Caller must hold the lock. A
// deleted product yields empty product fields rather than an error.
func (s *Storage) join(o model.Order) model.OrderDetails {
	details := model.OrderDetails{Order: o}
	if p, ok := s.products[o.ProductID]; ok {
		details.ProductName = p.Name
		details.Unit = p.Unit
		details.ProductImage = p.Image
	}
	return details
}

func (r *orderRepository) List(ctx context.Context) ([]model.OrderDetails, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.OrderDetails, 0, len(s.orders))
	for _, o := range s.orders {
		result = append(result, s.join(o))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.OrderDetails, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	details := s.join(o)
	return &details, nil
}

func (r *orderRepository) Create(ctx context.Context, customerName, contactNumber, deliveryAddress string, productID int64, quantity decimal.Decimal) (*model.OrderDetails, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	s.orderSeq++
	o := model.Order{
		ID:              s.orderSeq,
		CustomerName:    customerName,
		ContactNumber:   contactNumber,
		DeliveryAddress: deliveryAddress,
		ProductID:       productID,
		Quantity:        quantity,
		Status:          model.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
		TotalPrice:      p.Price.Mul(quantity),
	}
	s.orders[o.ID] = o

	details := s.join(o)
	return &details, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.OrderDetails, error) {
	s := r.storage
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	o.Status = status
	s.orders[id] = o

	details := s.join(o)
	return &details, nil
}
