package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/freshbulk/freshbulk/internal/domain/model"
)

// ProductRepository describes persistence operations for catalog products.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, name string, price decimal.Decimal, image, unit string) (*model.Product, error)
	Update(ctx context.Context, id int64, name string, price decimal.Decimal, image, unit string) (*model.Product, error)
	Delete(ctx context.Context, id int64) error
}
