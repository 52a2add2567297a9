package handler

import (
	"errors"
	"fmt"
	"net/http"

	"lapak-be/internal/auth"
	"lapak-be/internal/logger"
	"lapak-be/internal/product"
	"lapak-be/internal/seller"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// parseID turns the :id path param into a UUID. Malformed ids are a
// validation failure (422), deliberately distinct from 404 so a client
// can tell a bad request from a missing record.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("'%s' is not a valid id", raw),
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors onto the HTTP status taxonomy. Note
// that ownership mismatches arrive here already folded into
// product.ErrProductNotFound.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, seller.ErrEmailExists), errors.Is(err, seller.ErrUsernameExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, seller.ErrInvalidPassword), errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, seller.ErrSellerNotFound), errors.Is(err, product.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.FromCtx(c.Request.Context()).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
