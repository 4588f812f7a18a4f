package memstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/freshbulk/freshbulk/internal/domain/errors"
	"github.com/freshbulk/freshbulk/internal/domain/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.snapshot")
	s, err := New(path, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}
	return s, path
}

func reopen(t *testing.T, path string) *Storage {
	t.Helper()
	s, err := New(path, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("reopen storage: %v", err)
	}
	return s
}

func TestBootstrapSeedsCatalogAndWritesSnapshot(t *testing.T) {
	s, path := newTestStorage(t)

	products, err := s.Products().List(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 12 {
		t.Fatalf("expected 12 seeded products, got %d", len(products))
	}
	if products[0].ID != 1 || products[0].Name != "Fresh Tomatoes" {
		t.Fatalf("unexpected first product: %+v", products[0])
	}
	if !products[0].Price.Equal(decimal.RequireFromString("2.99")) {
		t.Fatalf("expected seed price 2.99, got %s", products[0].Price)
	}
	if products[11].Unit != "piece" {
		t.Fatalf("expected lettuce sold by piece, got %q", products[11].Unit)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected snapshot written at bootstrap: %v", err)
	}
}

func TestBootstrapSkippedWhenSnapshotExists(t *testing.T) {
	s, path := newTestStorage(t)

	if err := s.Products().Delete(context.Background(), 12); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	if err := s.Checkpoint(context.Background()); err != nil {
		t.Fatalf("checkpoint: %v", err)
	}

	restarted := reopen(t, path)
	products, err := restarted.Products().List(context.Background())
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 11 {
		t.Fatalf("expected persisted state loaded verbatim, got %d products", len(products))
	}
}

func TestCreateOrderFreezesTotal(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	order, err := s.Orders().Create(ctx, "A", "1", "X", 1, decimal.NewFromInt(3))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if !order.TotalPrice.Equal(decimal.RequireFromString("8.97")) {
		t.Fatalf("expected total 8.97, got %s", order.TotalPrice)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected Pending status, got %q", order.Status)
	}
	if order.ProductName != "Fresh Tomatoes" || order.Unit != "kg" {
		t.Fatalf("expected joined product fields, got %+v", order)
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be assigned")
	}

	_, err = s.Products().Update(ctx, 1, "Fresh Tomatoes", decimal.RequireFromString("9.99"), "img", "kg")
	if err != nil {
		t.Fatalf("update product: %v", err)
	}

	fetched, err := s.Orders().GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if !fetched.TotalPrice.Equal(decimal.RequireFromString("8.97")) {
		t.Fatalf("expected frozen total 8.97 after reprice, got %s", fetched.TotalPrice)
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Orders().Create(ctx, "A", "1", "X", 404, decimal.NewFromInt(1))
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	orders, err := s.Orders().List(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no order created, got %d", len(orders))
	}
}

func TestUpdateOrderStatusUnconstrained(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	order, err := s.Orders().Create(ctx, "A", "1", "X", 1, decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// Any label may be written in any sequence.
	for _, status := range []model.OrderStatus{
		model.OrderStatusDelivered,
		model.OrderStatusPending,
		model.OrderStatusInProgress,
		model.OrderStatusDelivered,
	} {
		updated, err := s.Orders().UpdateStatus(ctx, order.ID, status)
		if err != nil {
			t.Fatalf("update status to %q: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected status %q, got %q", status, updated.Status)
		}
	}

	fetched, err := s.Orders().GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if fetched.Status != model.OrderStatusDelivered {
		t.Fatalf("expected Delivered, got %q", fetched.Status)
	}
	if fetched.CustomerName != "A" || !fetched.Quantity.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("expected other fields unchanged, got %+v", fetched)
	}

	if _, err := s.Orders().UpdateStatus(ctx, 9999, model.OrderStatusPending); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for unknown order, got %v", err)
	}
}

func TestDeleteProductLeavesDanglingOrders(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	order, err := s.Orders().Create(ctx, "A", "1", "X", 2, decimal.NewFromInt(5))
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if err := s.Products().Delete(ctx, 2); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	orders, err := s.Orders().List(ctx)
	if err != nil {
		t.Fatalf("list orders after delete: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected dangling order to stay listed, got %d", len(orders))
	}
	if orders[0].ProductName != "" || orders[0].Unit != "" {
		t.Fatalf("expected empty product fields on join miss, got %+v", orders[0])
	}

	fetched, err := s.Orders().GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("expected dangling order retrievable by id, got %v", err)
	}
	if !fetched.TotalPrice.Equal(order.TotalPrice) {
		t.Fatalf("expected frozen total preserved, got %s", fetched.TotalPrice)
	}
	if fetched.ProductID != 2 {
		t.Fatalf("expected dangling reference kept, got %d", fetched.ProductID)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := s.Orders().Create(ctx, "A", "1", "X", 1, decimal.NewFromInt(1)); err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	orders, err := s.Orders().List(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].CreatedAt.After(orders[i-1].CreatedAt) {
			t.Fatalf("expected newest-first ordering, got %v before %v", orders[i-1].CreatedAt, orders[i].CreatedAt)
		}
		if orders[i-1].ID < orders[i].ID && orders[i-1].CreatedAt.Equal(orders[i].CreatedAt) {
			t.Fatalf("expected later order first on equal timestamps")
		}
	}
}

func TestProductUpdateAndDeleteNotFound(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	if _, err := s.Products().Update(ctx, 404, "x", decimal.NewFromInt(1), "img", "kg"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on update, got %v", err)
	}
	if err := s.Products().Delete(ctx, 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found on delete, got %v", err)
	}
}

func TestCreateProductAssignsMonotonicIDs(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	created, err := s.Products().Create(ctx, "Watermelon", decimal.RequireFromString("0.99"), "img", "kg")
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if created.ID != 13 {
		t.Fatalf("expected id 13 after the twelve seeds, got %d", created.ID)
	}

	if err := s.Products().Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	next, err := s.Products().Create(ctx, "Pumpkin", decimal.RequireFromString("1.59"), "img", "piece")
	if err != nil {
		t.Fatalf("create product: %v", err)
	}
	if next.ID != 14 {
		t.Fatalf("expected id 14, ids must never be reused, got %d", next.ID)
	}
}
