package inventory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EldarTem/inventoryTrack/pkg/models"
)

// Handler exposes the stock-count workflow to the rendering layer.
type Handler struct {
	inventories *Store
	items       *ItemStore
}

func NewHandler(inventories *Store, items *ItemStore) *Handler {
	return &Handler{inventories: inventories, items: items}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/inventories", h.GetInventoryList)
	router.POST("/inventories", h.CreateInventory)
	router.GET("/inventories/:id", h.GetInventory)
	router.PATCH("/inventories/:id", h.UpdateInventory)
	router.DELETE("/inventories/:id", h.RemoveInventory)
	router.POST("/inventories/:id/complete", h.CompleteInventory)
	router.GET("/inventories/:id/items", h.GetInventoryItems)
	router.POST("/inventories/:id/items", h.CreateInventoryItem)
	router.POST("/inventories/:id/items/bulk", h.CreateInventoryItems)
	router.PATCH("/inventory-items/:id", h.UpdateInventoryItem)
	router.DELETE("/inventory-items/:id", h.RemoveInventoryItem)
}

func (h *Handler) GetInventoryList(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventories.FetchAll())
}

func (h *Handler) GetInventory(c *gin.Context) {
	inv, ok := h.inventories.Fetch(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find inventory", "code": "INVENTORY_NOT_FOUND"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *Handler) CreateInventory(c *gin.Context) {
	var changes models.InventoryChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, h.inventories.Create(changes))
}

func (h *Handler) UpdateInventory(c *gin.Context) {
	var changes models.InventoryChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	inv, ok := h.inventories.Update(c.Param("id"), changes)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find inventory", "code": "INVENTORY_NOT_FOUND"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *Handler) RemoveInventory(c *gin.Context) {
	h.inventories.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) CompleteInventory(c *gin.Context) {
	inv, ok := h.inventories.Complete(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find inventory", "code": "INVENTORY_NOT_FOUND"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *Handler) GetInventoryItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.items.FetchAllByInventory(c.Param("id")))
}

// CreateInventoryItem creates one line under the stock count named in the
// path; the path wins over any inventoryId in the body.
func (h *Handler) CreateInventoryItem(c *gin.Context) {
	var changes models.InventoryItemChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	inventoryID := c.Param("id")
	changes.InventoryID = &inventoryID
	c.JSON(http.StatusCreated, h.items.Create(changes))
}

func (h *Handler) CreateInventoryItems(c *gin.Context) {
	var batch []models.InventoryItemChanges
	if err := c.ShouldBindJSON(&batch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	inventoryID := c.Param("id")
	for i := range batch {
		batch[i].InventoryID = &inventoryID
	}
	c.JSON(http.StatusCreated, h.items.CreateBulk(batch))
}

func (h *Handler) UpdateInventoryItem(c *gin.Context) {
	var changes models.InventoryItemChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}
	item, ok := h.items.Update(c.Param("id"), changes)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find inventory item", "code": "INVENTORY_ITEM_NOT_FOUND"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) RemoveInventoryItem(c *gin.Context) {
	h.items.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}
