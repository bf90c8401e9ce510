package models

const (
	DefaultCurrency = "USD"

	SourceManual    = "manual"
	SourceSimulated = "simulated"
)

// PriceHistory is one point in a card's price time series. Records are
// append-only and never mutated after creation; duplicates for the same
// card and timestamp are allowed (simulated history produces them).
type PriceHistory struct {
	ID        string  `json:"id" bson:"_id"`
	CardID    string  `json:"cardId" bson:"cardId"`
	Price     float64 `json:"price" bson:"price"`
	Currency  string  `json:"currency,omitempty" bson:"currency,omitempty"`
	Condition string  `json:"condition,omitempty" bson:"condition,omitempty"`
	Source    string  `json:"source,omitempty" bson:"source,omitempty"`
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
	Notes     string  `json:"notes,omitempty" bson:"notes,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
}

// PriceChange compares the latest price point against the most recent point
// at or before some past cutoff.
type PriceChange struct {
	OldPrice      float64 `json:"oldPrice"`
	NewPrice      float64 `json:"newPrice"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}
