package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cardvault/backend/internal/models"
	"github.com/cardvault/backend/internal/services"
)

type PriceHandler struct {
	priceService *services.PriceService
}

func NewPriceHandler(priceService *services.PriceService) *PriceHandler {
	return &PriceHandler{
		priceService: priceService,
	}
}

func (h *PriceHandler) AddPricePoint(c *gin.Context) {
	var point models.PriceHistory
	if err := c.ShouldBindJSON(&point); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.priceService.AddPricePoint(c.Request.Context(), &point)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PriceHandler) GetHistory(c *gin.Context) {
	history, err := h.priceService.History(c.Request.Context(), c.Param("cardId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *PriceHandler) GetHistoryRange(c *gin.Context) {
	startTime, err := strconv.ParseInt(c.Query("startTime"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime must be a millisecond timestamp"})
		return
	}
	endTime, err := strconv.ParseInt(c.Query("endTime"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endTime must be a millisecond timestamp"})
		return
	}

	history, err := h.priceService.HistoryRange(c.Request.Context(), c.Param("cardId"), startTime, endTime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *PriceHandler) GetLatest(c *gin.Context) {
	latest, err := h.priceService.Latest(c.Request.Context(), c.Param("cardId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if latest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no price history for card"})
		return
	}
	c.JSON(http.StatusOK, latest)
}

func (h *PriceHandler) GetChange(c *gin.Context) {
	daysAgo := int64(7)
	if daysStr := c.Query("daysAgo"); daysStr != "" {
		parsed, err := strconv.ParseInt(daysStr, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "daysAgo must be a non-negative integer"})
			return
		}
		daysAgo = parsed
	}

	change, err := h.priceService.PriceChange(c.Request.Context(), c.Param("cardId"), daysAgo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if change == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no price history for card"})
		return
	}
	c.JSON(http.StatusOK, change)
}

func (h *PriceHandler) UpdateCurrentPrice(c *gin.Context) {
	if err := h.priceService.UpdateCardCurrentPrice(c.Request.Context(), c.Param("cardId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (h *PriceHandler) SimulateHistory(c *gin.Context) {
	days, ok := h.simulationDays(c)
	if !ok {
		return
	}

	cardID := c.Param("cardId")
	points, err := h.priceService.SimulateHistory(c.Request.Context(), cardID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Added %d price points for card %s", points, cardID),
		"count":   points,
	})
}

func (h *PriceHandler) SimulateHistoryAll(c *gin.Context) {
	days, ok := h.simulationDays(c)
	if !ok {
		return
	}

	cards, points, err := h.priceService.SimulateHistoryAll(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Added price history for %d cards (%d total price points)", cards, points),
		"cards":   cards,
		"count":   points,
	})
}

func (h *PriceHandler) simulationDays(c *gin.Context) (int, bool) {
	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative integer"})
			return 0, false
		}
		days = parsed
	}
	return days, true
}
