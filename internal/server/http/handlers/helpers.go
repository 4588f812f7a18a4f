package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/freshbulk/freshbulk/internal/domain/errors"
	"github.com/freshbulk/freshbulk/internal/server/http/dto"
)

// PathID extracts the numeric :id parameter; a non-numeric value is
// indistinguishable from a missing entity for the caller.
func PathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respondError maps domain errors to transport failures with the shared
// error body, using notFoundMsg for missing entities and fallbackMsg for
// everything unexpected.
func respondError(c *gin.Context, err error, notFoundMsg, fallbackMsg string) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFoundMsg})
	case errors.Is(err, domainErrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallbackMsg})
	}
}
