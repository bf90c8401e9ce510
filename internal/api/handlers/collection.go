package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardvault/backend/internal/models"
	"github.com/cardvault/backend/internal/services"
)

type CollectionHandler struct {
	collectionService *services.CollectionService
}

func NewCollectionHandler(collectionService *services.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		collectionService: collectionService,
	}
}

func (h *CollectionHandler) GetUserCollection(c *gin.Context) {
	items, err := h.collectionService.GetUserCollection(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *CollectionHandler) AddToCollection(c *gin.Context) {
	var item models.CollectionItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}

	created, err := h.collectionService.AddToCollection(c.Request.Context(), c.Param("userId"), &item)
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CollectionHandler) GetItem(c *gin.Context) {
	item, err := h.collectionService.GetByID(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "collection item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CollectionHandler) RemoveItem(c *gin.Context) {
	if err := h.collectionService.RemoveFromCollection(c.Request.Context(), c.Param("itemId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (h *CollectionHandler) GetTotalValue(c *gin.Context) {
	totalValue, err := h.collectionService.TotalValue(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalValue": totalValue})
}

func (h *CollectionHandler) GetStats(c *gin.Context) {
	stats, err := h.collectionService.Stats(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
