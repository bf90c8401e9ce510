package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardvault/backend/internal/metrics"
	"github.com/cardvault/backend/internal/models"
)

const (
	pricesCollection = "prices"

	dayMillis = 24 * 60 * 60 * 1000
)

// PriceService manages the append-only price time series per card and the
// derived currentPrice on the card record.
type PriceService struct {
	db    *mongo.Database
	cards *CardService
}

func NewPriceService(db *mongo.Database, cards *CardService) *PriceService {
	return &PriceService{
		db:    db,
		cards: cards,
	}
}

// AddPricePoint persists a new immutable price record. Duplicates for the
// same card and timestamp are permitted; an existing record is never
// updated. Missing fields get defaults (timestamp now, currency USD,
// condition Near Mint).
func (s *PriceService) AddPricePoint(ctx context.Context, point *models.PriceHistory) (*models.PriceHistory, error) {
	applyPricePointDefaults(point, time.Now().UnixMilli())

	_, err := s.db.Collection(pricesCollection).InsertOne(ctx, point)
	if err != nil {
		return nil, fmt.Errorf("failed to add price point: %w", err)
	}

	metrics.PricePointsTotal.Inc()
	log.Printf("Price point added for card %s: $%.2f", point.CardID, point.Price)
	return point, nil
}

// History returns all price points for cardID, ascending by timestamp.
func (s *PriceService) History(ctx context.Context, cardID string) ([]models.PriceHistory, error) {
	return s.findHistory(ctx, bson.M{"cardId": cardID})
}

// HistoryRange returns price points for cardID with
// startTime <= timestamp <= endTime, ascending by timestamp.
func (s *PriceService) HistoryRange(ctx context.Context, cardID string, startTime, endTime int64) ([]models.PriceHistory, error) {
	return s.findHistory(ctx, bson.M{
		"cardId":    cardID,
		"timestamp": bson.M{"$gte": startTime, "$lte": endTime},
	})
}

func (s *PriceService) findHistory(ctx context.Context, filter bson.M) ([]models.PriceHistory, error) {
	cursor, err := s.db.Collection(pricesCollection).Find(
		ctx,
		filter,
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price history: %w", err)
	}

	history := []models.PriceHistory{}
	if err := cursor.All(ctx, &history); err != nil {
		return nil, fmt.Errorf("failed to decode price history: %w", err)
	}
	return history, nil
}

// Latest returns the price point with the maximum timestamp for cardID, or
// nil when the card has no history.
func (s *PriceService) Latest(ctx context.Context, cardID string) (*models.PriceHistory, error) {
	return s.latestAtOrBefore(ctx, bson.M{"cardId": cardID})
}

func (s *PriceService) latestAtOrBefore(ctx context.Context, filter bson.M) (*models.PriceHistory, error) {
	var point models.PriceHistory
	err := s.db.Collection(pricesCollection).FindOne(
		ctx,
		filter,
		options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}}),
	).Decode(&point)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest price: %w", err)
	}
	return &point, nil
}

// PriceChange compares the latest price against the most recent point at
// least daysAgo days old. Nil when the card has no history at all. When no
// point is old enough, both sides are the current price and the change is
// zero. An old price of exactly zero yields an infinite percentage; that
// edge is passed through as-is.
func (s *PriceService) PriceChange(ctx context.Context, cardID string, daysAgo int64) (*models.PriceChange, error) {
	current, err := s.Latest(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	pastTime := time.Now().UnixMilli() - daysAgo*dayMillis
	old, err := s.latestAtOrBefore(ctx, bson.M{
		"cardId":    cardID,
		"timestamp": bson.M{"$lte": pastTime},
	})
	if err != nil {
		return nil, err
	}
	if old == nil {
		return &models.PriceChange{
			OldPrice: current.Price,
			NewPrice: current.Price,
		}, nil
	}

	change := computeChange(old.Price, current.Price)
	return &change, nil
}

// UpdateCardCurrentPrice writes the latest history price onto the card
// record and refreshes its updatedAt. A missing card or empty history makes
// this a no-op. Read-then-write with no isolation; concurrent writers race.
func (s *PriceService) UpdateCardCurrentPrice(ctx context.Context, cardID string) error {
	latest, err := s.Latest(ctx, cardID)
	if err != nil {
		return err
	}
	if latest == nil {
		return nil
	}

	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card == nil {
		return nil
	}

	price := latest.Price
	card.CurrentPrice = &price
	if err := s.cards.Update(ctx, card); err != nil {
		return err
	}

	log.Printf("Updated current price for %s to $%.2f", card.Name, price)
	return nil
}

// SimulateHistory seeds days+1 daily price points for cardID (a random walk
// with a gentle upward trend, source "simulated") and refreshes the card's
// current price. The base price is the card's current price when it has
// one, otherwise a random value between 20 and 100. Points are written
// sequentially and a failure stops the loop with earlier points committed.
func (s *PriceService) SimulateHistory(ctx context.Context, cardID string, days int) (int, error) {
	base := 20.0 + rand.Float64()*80.0
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return 0, err
	}
	if card != nil && card.CurrentPrice != nil {
		base = *card.CurrentPrice
	}

	points := simulatedSeries(cardID, base, days, time.Now().UnixMilli())
	for i := range points {
		if _, err := s.AddPricePoint(ctx, &points[i]); err != nil {
			return i, fmt.Errorf("simulation failed at point %d: %w", i, err)
		}
	}

	if err := s.UpdateCardCurrentPrice(ctx, cardID); err != nil {
		return len(points), err
	}
	return len(points), nil
}

// SimulateHistoryAll runs SimulateHistory for every card. Fail-fast: a
// failure on card N leaves earlier cards seeded.
func (s *PriceService) SimulateHistoryAll(ctx context.Context, days int) (cards, points int, err error) {
	all, err := s.cards.GetAll(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, card := range all {
		added, err := s.SimulateHistory(ctx, card.ID, days)
		points += added
		if err != nil {
			return cards, points, err
		}
		cards++
	}
	return cards, points, nil
}

func applyPricePointDefaults(point *models.PriceHistory, now int64) {
	if point.ID == "" {
		point.ID = uuid.NewString()
	}
	point.CreatedAt = now
	if point.Timestamp == 0 {
		point.Timestamp = now
	}
	if point.Currency == "" {
		point.Currency = models.DefaultCurrency
	}
	if point.Condition == "" {
		point.Condition = models.DefaultCondition
	}
}

func computeChange(oldPrice, newPrice float64) models.PriceChange {
	change := newPrice - oldPrice
	return models.PriceChange{
		OldPrice:      oldPrice,
		NewPrice:      newPrice,
		Change:        change,
		ChangePercent: change / oldPrice * 100,
	}
}

// simulatedSeries builds days+1 points ending at now, one per day. Each
// point fluctuates +/-10% around the base plus a 1%-per-day upward trend.
func simulatedSeries(cardID string, base float64, days int, now int64) []models.PriceHistory {
	points := make([]models.PriceHistory, 0, days+1)
	for i := days; i >= 0; i-- {
		fluctuation := (rand.Float64() - 0.5) * base * 0.2
		trend := float64(days-i) * base * 0.01
		points = append(points, models.PriceHistory{
			CardID:    cardID,
			Price:     base + fluctuation + trend,
			Condition: models.DefaultCondition,
			Source:    models.SourceSimulated,
			Currency:  models.DefaultCurrency,
			Timestamp: now - int64(i)*dayMillis,
		})
	}
	return points
}
