package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardvault/backend/internal/metrics"
	"github.com/cardvault/backend/internal/models"
)

const cardsCollection = "cards"

// CardService handles CRUD and search over the cards collection, plus bulk
// import from the bundled JSON dataset.
type CardService struct {
	db      *mongo.Database
	dataDir string
}

func NewCardService(db *mongo.Database, dataDir string) *CardService {
	return &CardService{
		db:      db,
		dataDir: dataDir,
	}
}

// Create persists a new card. An empty id gets a generated UUID, and both
// metadata timestamps are stamped to now. Returns the stored record.
func (s *CardService) Create(ctx context.Context, card *models.Card) (*models.Card, error) {
	applyCardDefaults(card, time.Now().UnixMilli())

	_, err := s.db.Collection(cardsCollection).ReplaceOne(
		ctx,
		bson.M{"_id": card.ID},
		card,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	metrics.CardsCreatedTotal.Inc()
	log.Printf("Card created: %s (ID: %s)", card.Name, card.ID)
	return card, nil
}

// GetByID returns the card with the given id, or nil if no document exists.
func (s *CardService) GetByID(ctx context.Context, id string) (*models.Card, error) {
	var card models.Card
	err := s.db.Collection(cardsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&card)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch card %s: %w", id, err)
	}
	return &card, nil
}

// GetAll returns every card in the collection, in store-native order.
func (s *CardService) GetAll(ctx context.Context) ([]models.Card, error) {
	cursor, err := s.db.Collection(cardsCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	cards := []models.Card{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	return cards, nil
}

// Search applies equality filters for game and cardType on the store side
// (empty means no filter), then narrows by a case-insensitive substring
// match on the name in memory when query is non-empty.
func (s *CardService) Search(ctx context.Context, query, game, cardType string) ([]models.Card, error) {
	filter := bson.M{}
	if game != "" {
		filter["game"] = game
	}
	if cardType != "" {
		filter["cardType"] = cardType
	}

	cursor, err := s.db.Collection(cardsCollection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search cards: %w", err)
	}

	cards := []models.Card{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}

	return filterByName(cards, query), nil
}

// Delete removes the card with the given id. Deleting an id that does not
// exist is not an error.
func (s *CardService) Delete(ctx context.Context, id string) error {
	_, err := s.db.Collection(cardsCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete card %s: %w", id, err)
	}
	log.Printf("Card deleted: %s", id)
	return nil
}

// Update writes the card document back in full, refreshing updatedAt.
func (s *CardService) Update(ctx context.Context, card *models.Card) error {
	card.UpdatedAt = time.Now().UnixMilli()
	_, err := s.db.Collection(cardsCollection).ReplaceOne(ctx, bson.M{"_id": card.ID}, card)
	if err != nil {
		return fmt.Errorf("failed to update card %s: %w", card.ID, err)
	}
	return nil
}

// ImportFromJSON reads cards.json from the data directory and creates each
// card in array order. A missing dataset fails the whole call; a failure
// partway through leaves earlier cards committed and stops.
func (s *CardService) ImportFromJSON(ctx context.Context) ([]models.Card, error) {
	path := filepath.Join(s.dataDir, "cards.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import dataset %s: %w", path, err)
	}

	var cards []models.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("failed to parse import dataset: %w", err)
	}

	imported := make([]models.Card, 0, len(cards))
	for i := range cards {
		created, err := s.Create(ctx, &cards[i])
		if err != nil {
			return nil, fmt.Errorf("import failed at card %d: %w", i, err)
		}
		imported = append(imported, *created)
		metrics.CardsImportedTotal.Inc()
	}

	log.Printf("Imported %d cards from %s", len(imported), path)
	return imported, nil
}

func applyCardDefaults(card *models.Card, now int64) {
	if card.ID == "" {
		card.ID = uuid.NewString()
	}
	card.CreatedAt = now
	card.UpdatedAt = now
}

// filterByName keeps cards whose name contains query case-insensitively,
// preserving input order. An empty query keeps everything.
func filterByName(cards []models.Card, query string) []models.Card {
	if query == "" {
		return cards
	}
	q := strings.ToLower(query)
	matched := []models.Card{}
	for _, card := range cards {
		if strings.Contains(strings.ToLower(card.Name), q) {
			matched = append(matched, card)
		}
	}
	return matched
}
