package services

import (
	"math"
	"testing"

	"github.com/cardvault/backend/internal/models"
)

func cardWithPrice(price float64) *models.Card {
	return &models.Card{ID: "card-1", Name: "Monkey.D.Luffy", CurrentPrice: &price}
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCollectionValueExcludesWishlist(t *testing.T) {
	purchase := 30.0
	items := []models.CollectionItem{
		{Quantity: 2, Card: cardWithPrice(45.99), PurchasePrice: &purchase},
		{Quantity: 1, Card: cardWithPrice(10.00), IsWishlist: true},
	}

	value := collectionValue(ownedItems(items))
	if !floatEq(value, 91.98) {
		t.Errorf("expected total value 91.98 (wishlist excluded), got %v", value)
	}
}

func TestCollectionValueMissingPriceCountsAsZero(t *testing.T) {
	items := []models.CollectionItem{
		{Quantity: 3, Card: &models.Card{ID: "card-1"}},
		{Quantity: 2},
		{Quantity: 1, Card: cardWithPrice(5.0)},
	}

	if value := collectionValue(ownedItems(items)); !floatEq(value, 5.0) {
		t.Errorf("expected 5.0, got %v", value)
	}
}

func TestComputeStats(t *testing.T) {
	purchase := 30.0
	items := []models.CollectionItem{
		{Quantity: 2, Card: cardWithPrice(45.99), PurchasePrice: &purchase},
		{Quantity: 1, Card: cardWithPrice(10.00), IsWishlist: true},
	}

	stats := computeStats(items)
	if stats.UniqueCards != 1 {
		t.Errorf("expected uniqueCards=1, got %d", stats.UniqueCards)
	}
	if stats.TotalCards != 2 {
		t.Errorf("expected totalCards=2, got %d", stats.TotalCards)
	}
	if !floatEq(stats.TotalValue, 91.98) {
		t.Errorf("expected totalValue=91.98, got %v", stats.TotalValue)
	}
	if !floatEq(stats.TotalInvested, 60.0) {
		t.Errorf("expected totalInvested=60.0, got %v", stats.TotalInvested)
	}
	if !floatEq(stats.ProfitLoss, 31.98) {
		t.Errorf("expected profitLoss=31.98, got %v", stats.ProfitLoss)
	}
}

func TestComputeStatsMissingPurchasePrice(t *testing.T) {
	items := []models.CollectionItem{
		{Quantity: 4, Card: cardWithPrice(2.5)},
	}

	stats := computeStats(items)
	if !floatEq(stats.TotalInvested, 0) {
		t.Errorf("missing purchase price should count as zero, got %v", stats.TotalInvested)
	}
	if !floatEq(stats.ProfitLoss, 10.0) {
		t.Errorf("expected profitLoss=10.0, got %v", stats.ProfitLoss)
	}
}

func TestComputeStatsEmptyCollection(t *testing.T) {
	stats := computeStats(nil)
	if stats.UniqueCards != 0 || stats.TotalCards != 0 || stats.TotalValue != 0 {
		t.Errorf("expected zero stats for empty collection, got %+v", stats)
	}
}
