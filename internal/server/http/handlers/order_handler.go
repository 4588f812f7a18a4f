package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/freshbulk/freshbulk/internal/domain/model"
	"github.com/freshbulk/freshbulk/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err, "Order not found", "Failed to fetch orders")
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.facade.PlaceOrder(
		c.Request.Context(),
		req.CustomerName,
		req.ContactNumber,
		req.DeliveryAddress,
		req.ProductID,
		decimal.NewFromFloat(req.Quantity),
	)
	if err != nil {
		respondError(c, err, "Product not found", "Failed to create order")
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Order not found", "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PUT /api/orders/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
		return
	}

	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err, "Order not found", "Failed to update order status")
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toOrderResponse(o model.OrderDetails) dto.OrderResponse {
	return dto.OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		ContactNumber:   o.ContactNumber,
		DeliveryAddress: o.DeliveryAddress,
		ProductID:       o.ProductID,
		Quantity:        o.Quantity.InexactFloat64(),
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		TotalPrice:      o.TotalPrice.InexactFloat64(),
		ProductName:     o.ProductName,
		Unit:            o.Unit,
		ProductImage:    o.ProductImage,
	}
}
