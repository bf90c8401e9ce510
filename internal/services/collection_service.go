package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardvault/backend/internal/metrics"
	"github.com/cardvault/backend/internal/models"
)

const collectionsCollection = "collections"

// ErrCardNotFound is returned when a collection item references a card id
// with no matching card document. Nothing is persisted in that case.
var ErrCardNotFound = errors.New("referenced card not found")

// CollectionService handles per-user collection items and the aggregations
// over them (total value, summary stats).
type CollectionService struct {
	db    *mongo.Database
	cards *CardService
}

func NewCollectionService(db *mongo.Database, cards *CardService) *CollectionService {
	return &CollectionService{
		db:    db,
		cards: cards,
	}
}

// AddToCollection persists a new item for userID. The referenced card must
// exist; its current state is embedded into the item as a snapshot copy,
// which is not kept in sync with later card edits.
func (s *CollectionService) AddToCollection(ctx context.Context, userID string, item *models.CollectionItem) (*models.CollectionItem, error) {
	now := time.Now().UnixMilli()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	item.UserID = userID
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.DateAcquired == 0 {
		item.DateAcquired = now
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Condition == "" {
		item.Condition = models.DefaultCondition
	}

	card, err := s.cards.GetByID(ctx, item.CardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, item.CardID)
	}
	snapshot := *card
	item.Card = &snapshot

	_, err = s.db.Collection(collectionsCollection).ReplaceOne(
		ctx,
		bson.M{"_id": item.ID},
		item,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add collection item: %w", err)
	}

	log.Printf("Added to collection: %s for user %s", card.Name, userID)
	return item, nil
}

// GetUserCollection returns all items belonging to userID, wishlist
// entries included, in store-native order.
func (s *CollectionService) GetUserCollection(ctx context.Context, userID string) ([]models.CollectionItem, error) {
	cursor, err := s.db.Collection(collectionsCollection).Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection for user %s: %w", userID, err)
	}

	items := []models.CollectionItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode collection items: %w", err)
	}
	return items, nil
}

// GetByID returns one item by id, or nil if it does not exist.
func (s *CollectionService) GetByID(ctx context.Context, itemID string) (*models.CollectionItem, error) {
	var item models.CollectionItem
	err := s.db.Collection(collectionsCollection).FindOne(ctx, bson.M{"_id": itemID}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch collection item %s: %w", itemID, err)
	}
	return &item, nil
}

// RemoveFromCollection deletes the item with the given id.
func (s *CollectionService) RemoveFromCollection(ctx context.Context, itemID string) error {
	_, err := s.db.Collection(collectionsCollection).DeleteOne(ctx, bson.M{"_id": itemID})
	if err != nil {
		return fmt.Errorf("failed to remove collection item %s: %w", itemID, err)
	}
	log.Printf("Removed from collection: %s", itemID)
	return nil
}

// TotalValue sums embedded-card price times quantity over the user's owned
// items. Wishlist items never contribute; a missing price counts as zero.
func (s *CollectionService) TotalValue(ctx context.Context, userID string) (float64, error) {
	items, err := s.GetUserCollection(ctx, userID)
	if err != nil {
		return 0, err
	}
	return collectionValue(ownedItems(items)), nil
}

// Stats computes the summary over the user's owned items.
func (s *CollectionService) Stats(ctx context.Context, userID string) (*models.CollectionStats, error) {
	items, err := s.GetUserCollection(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := computeStats(items)
	metrics.UpdateCollectionMetrics(userID, stats)
	return &stats, nil
}

// ownedItems filters out wishlist entries, preserving order.
func ownedItems(items []models.CollectionItem) []models.CollectionItem {
	owned := []models.CollectionItem{}
	for _, item := range items {
		if !item.IsWishlist {
			owned = append(owned, item)
		}
	}
	return owned
}

func collectionValue(owned []models.CollectionItem) float64 {
	var total float64
	for _, item := range owned {
		if item.Card != nil && item.Card.CurrentPrice != nil {
			total += *item.Card.CurrentPrice * float64(item.Quantity)
		}
	}
	return total
}

func computeStats(items []models.CollectionItem) models.CollectionStats {
	owned := ownedItems(items)

	totalCards := 0
	var totalInvested float64
	for _, item := range owned {
		totalCards += item.Quantity
		if item.PurchasePrice != nil {
			totalInvested += *item.PurchasePrice * float64(item.Quantity)
		}
	}

	totalValue := collectionValue(owned)
	return models.CollectionStats{
		UniqueCards:   len(owned),
		TotalCards:    totalCards,
		TotalValue:    totalValue,
		TotalInvested: totalInvested,
		ProfitLoss:    totalValue - totalInvested,
	}
}
