package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inventory-project/inventory-server/internal/database/queries"
	"github.com/inventory-project/inventory-server/internal/models"
)

// writeStoreError maps store errors onto HTTP responses. Storage
// failures are logged with context but reported generically.
func writeStoreError(c *gin.Context, err error, logCtx *logrus.Entry) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, queries.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	case errors.Is(err, queries.ErrDuplicateEntry):
		c.JSON(http.StatusConflict, gin.H{"error": "username or email already exists"})
	default:
		logCtx.WithError(err).Error("Storage operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
