package memstore

import (
	"github.com/shopspring/decimal"

	"github.com/freshbulk/freshbulk/internal/domain/model"
)

// seedCatalog returns the initial product set used when no snapshot exists.
func seedCatalog() []model.Product {
	price := decimal.RequireFromString
	return []model.Product{
		{ID: 1, Name: "Fresh Tomatoes", Price: price("2.99"), Image: "https://images.unsplash.com/photo-1546470427-1ec0a5a0c423", Unit: "kg"},
		{ID: 2, Name: "Organic Potatoes", Price: price("1.99"), Image: "https://images.unsplash.com/photo-1518977676601-b53f82aba655", Unit: "kg"},
		{ID: 3, Name: "Green Apples", Price: price("3.99"), Image: "https://images.unsplash.com/photo-1619546813926-a78fa6372cd2", Unit: "kg"},
		{ID: 4, Name: "Fresh Carrots", Price: price("1.49"), Image: "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37", Unit: "kg"},
		{ID: 5, Name: "Red Onions", Price: price("1.79"), Image: "https://images.unsplash.com/photo-1618512496248-a01f6a44c5e8", Unit: "kg"},
		{ID: 6, Name: "Sweet Oranges", Price: price("4.99"), Image: "https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b", Unit: "kg"},
		{ID: 7, Name: "Fresh Cucumbers", Price: price("2.49"), Image: "https://images.unsplash.com/photo-1604977042946-1eecc30f269e", Unit: "kg"},
		{ID: 8, Name: "Ripe Bananas", Price: price("2.29"), Image: "https://images.unsplash.com/photo-1603833665858-e61d17a86224", Unit: "kg"},
		{ID: 9, Name: "Bell Peppers", Price: price("3.49"), Image: "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83", Unit: "kg"},
		{ID: 10, Name: "Fresh Broccoli", Price: price("2.99"), Image: "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc", Unit: "kg"},
		{ID: 11, Name: "Sweet Strawberries", Price: price("5.99"), Image: "https://images.unsplash.com/photo-1518635017498-87f514b751ba", Unit: "kg"},
		{ID: 12, Name: "Fresh Lettuce", Price: price("1.99"), Image: "https://images.unsplash.com/photo-1622206151226-18ca2c9ab4a1", Unit: "piece"},
	}
}
