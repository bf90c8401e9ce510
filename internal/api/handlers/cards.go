package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardvault/backend/internal/models"
	"github.com/cardvault/backend/internal/services"
)

type CardHandler struct {
	cardService *services.CardService
}

func NewCardHandler(cardService *services.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

func (h *CardHandler) GetAllCards(c *gin.Context) {
	cards, err := h.cardService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) GetCard(c *gin.Context) {
	card, err := h.cardService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) CreateCard(c *gin.Context) {
	var card models.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.cardService.Create(c.Request.Context(), &card)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CardHandler) SearchCards(c *gin.Context) {
	cards, err := h.cardService.Search(
		c.Request.Context(),
		c.Query("query"),
		c.Query("game"),
		c.Query("cardType"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *CardHandler) DeleteCard(c *gin.Context) {
	if err := h.cardService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (h *CardHandler) ImportCards(c *gin.Context) {
	cards, err := h.cardService.ImportFromJSON(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(cards),
		"message": fmt.Sprintf("Successfully imported %d cards", len(cards)),
	})
}

// CreateSampleCard seeds a known card so a fresh deployment can be smoke
// tested without importing the full dataset.
func (h *CardHandler) CreateSampleCard(c *gin.Context) {
	cost := 0
	power := 5000
	price := 45.99
	sample := models.Card{
		Name:         "Monkey.D.Luffy",
		CardType:     models.CardTypeLeader,
		Game:         models.GameOnePieceTCG,
		Color:        "RED",
		Cost:         &cost,
		Power:        &power,
		Attribute:    "Strike",
		Effect:       "[DON!! x1] [When Attacking] Give up to 1 of your Leader or Character cards +1000 power during this battle.",
		Set:          "Romance Dawn",
		Number:       "OP01-001",
		Rarity:       "LEADER",
		CurrentPrice: &price,
		Tags:         []string{"Straw Hat Pirates", "Protagonist", "Captain"},
		ReleaseDate:  "2022-07-08",
	}

	created, err := h.cardService.Create(c.Request.Context(), &sample)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}
