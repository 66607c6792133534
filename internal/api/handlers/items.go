package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/inventory-project/inventory-server/internal/api/middleware"
	"github.com/inventory-project/inventory-server/internal/models"
)

// ItemStore is the slice of the item store the endpoints use. The
// owner id scopes every operation.
type ItemStore interface {
	CreateItem(owner uuid.UUID, req *models.CreateItemRequest) (*models.Item, error)
	GetItem(owner, id uuid.UUID) (*models.Item, error)
	ListItems(owner uuid.UUID) ([]models.Item, error)
	UpdateItem(owner, id uuid.UUID, req *models.UpdateItemRequest) (*models.Item, error)
	DeleteItem(owner, id uuid.UUID) error
}

type ItemHandler struct {
	items ItemStore
}

func NewItemHandler(items ItemStore) *ItemHandler {
	return &ItemHandler{items: items}
}

// CreateItem handles item creation for the authenticated user
func (h *ItemHandler) CreateItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logCtx := logrus.WithField("user_id", user.ID)
	item, err := h.items.CreateItem(user.ID, &req)
	if err != nil {
		writeStoreError(c, err, logCtx)
		return
	}

	logCtx.WithField("item_id", item.ID).Info("Item created")
	c.JSON(http.StatusCreated, gin.H{
		"message": "item created successfully",
		"item":    item,
	})
}

// ListItems returns all items owned by the authenticated user,
// newest first
func (h *ItemHandler) ListItems(c *gin.Context) {
	user := middleware.CurrentUser(c)

	items, err := h.items.ListItems(user.ID)
	if err != nil {
		writeStoreError(c, err, logrus.WithField("user_id", user.ID))
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetItem returns a single owned item
func (h *ItemHandler) GetItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	// A malformed id is indistinguishable from a missing record.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	item, err := h.items.GetItem(user.ID, id)
	if err != nil {
		writeStoreError(c, err, logrus.WithFields(logrus.Fields{"user_id": user.ID, "item_id": id}))
		return
	}

	c.JSON(http.StatusOK, item)
}

// UpdateItem applies a partial update to an owned item
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logCtx := logrus.WithFields(logrus.Fields{"user_id": user.ID, "item_id": id})
	if _, err := h.items.UpdateItem(user.ID, id, &req); err != nil {
		writeStoreError(c, err, logCtx)
		return
	}

	logCtx.Info("Item updated")
	c.JSON(http.StatusOK, gin.H{"message": "item updated successfully"})
}

// DeleteItem permanently removes an owned item
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	logCtx := logrus.WithFields(logrus.Fields{"user_id": user.ID, "item_id": id})
	if err := h.items.DeleteItem(user.ID, id); err != nil {
		writeStoreError(c, err, logCtx)
		return
	}

	logCtx.Info("Item deleted")
	c.JSON(http.StatusOK, gin.H{"message": "item deleted successfully"})
}
