package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/freshbulk/freshbulk/internal/domain/model"
	"github.com/freshbulk/freshbulk/internal/domain/repository"
)

// CatalogUseCase encapsulates product catalog administration.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List returns every catalog product in insertion order.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Add inserts a new product. Negative prices are clamped to zero; required
// field enforcement belongs to the request layer.
func (u *CatalogUseCase) Add(ctx context.Context, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	if price.IsNegative() {
		price = decimal.Zero
	}
	return u.products.Create(ctx, name, price, image, unit)
}

// Update replaces every mutable field of the product.
func (u *CatalogUseCase) Update(ctx context.Context, id int64, name string, price decimal.Decimal, image, unit string) (*model.Product, error) {
	if price.IsNegative() {
		price = decimal.Zero
	}
	return u.products.Update(ctx, id, name, price, image, unit)
}

// Remove deletes the product. Orders referencing it keep their frozen
// totals and a dangling reference.
func (u *CatalogUseCase) Remove(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}
