package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/freshbulk/freshbulk/internal/domain/model"
	"github.com/freshbulk/freshbulk/internal/server/http/dto"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		respondError(c, err, "Product not found", "Failed to fetch products")
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.facade.AddProduct(c.Request.Context(), req.Name, decimal.NewFromFloat(req.Price), req.Image, req.Unit)
	if err != nil {
		respondError(c, err, "Product not found", "Failed to add product")
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Product not found"})
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), id, req.Name, decimal.NewFromFloat(req.Price), req.Image, req.Unit)
	if err != nil {
		respondError(c, err, "Product not found", "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// Delete handles DELETE /api/products/:id. Deletion succeeds even when
// orders still reference the product.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Product not found"})
		return
	}

	if err := h.facade.RemoveProduct(c.Request.Context(), id); err != nil {
		respondError(c, err, "Product not found", "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Message: "Product deleted successfully"})
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price.InexactFloat64(),
		Image: p.Image,
		Unit:  p.Unit,
	}
}
