package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/freshbulk/freshbulk/internal/server/http/dto"
)

// HealthHandler reports store liveness.
type HealthHandler struct {
	facade HealthFacade
}

// NewHealthHandler constructs HealthHandler.
func NewHealthHandler(facade HealthFacade) *HealthHandler {
	return &HealthHandler{facade: facade}
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(c *gin.Context) {
	path, products, orders := h.facade.SnapshotInfo()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:       "ok",
		SnapshotPath: path,
		Products:     products,
		Orders:       orders,
	})
}
