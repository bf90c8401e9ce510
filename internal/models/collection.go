package models

const DefaultCondition = "Near Mint"

// CollectionItem links a user to a card they own (or want, when IsWishlist
// is set). Card is a denormalized snapshot taken when the item was added;
// it is never re-synced with later edits to the card document, so it can
// drift from the authoritative record.
type CollectionItem struct {
	ID     string `json:"id" bson:"_id"`
	UserID string `json:"userId" bson:"userId"`
	CardID string `json:"cardId" bson:"cardId"`
	Card   *Card  `json:"card,omitempty" bson:"card,omitempty"`

	Quantity         int      `json:"quantity" bson:"quantity"`
	Condition        string   `json:"condition,omitempty" bson:"condition,omitempty"`
	PurchasePrice    *float64 `json:"purchasePrice,omitempty" bson:"purchasePrice,omitempty"`
	PurchaseCurrency string   `json:"purchaseCurrency,omitempty" bson:"purchaseCurrency,omitempty"`
	DateAcquired     int64    `json:"dateAcquired,omitempty" bson:"dateAcquired,omitempty"`
	Notes            string   `json:"notes,omitempty" bson:"notes,omitempty"`
	IsWishlist       bool     `json:"isWishlist" bson:"isWishlist"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// CollectionStats summarizes the owned (non-wishlist) part of a user's
// collection. TotalInvested treats items without a purchase price as zero.
type CollectionStats struct {
	UniqueCards   int     `json:"uniqueCards"`
	TotalCards    int     `json:"totalCards"`
	TotalValue    float64 `json:"totalValue"`
	TotalInvested float64 `json:"totalInvested"`
	ProfitLoss    float64 `json:"profitLoss"`
}
