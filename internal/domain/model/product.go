package model

import "github.com/shopspring/decimal"

// Product is a catalog item sold in bulk units.
type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
	Unit  string          `json:"unit"`
}
