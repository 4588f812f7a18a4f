package dto

// ProductRequest carries admin create/update payloads. Money crosses the
// wire as a JSON number, matching the storefront frontend.
type ProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"omitempty,min=0"`
	Image string  `json:"image" binding:"required"`
	Unit  string  `json:"unit" binding:"required"`
}

// ProductResponse describes a catalog item.
type ProductResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
	Unit  string  `json:"unit"`
}

// DeleteResponse confirms a product removal.
type DeleteResponse struct {
	Message string `json:"message"`
}
