package models

type Game string

const (
	GameOnePieceTCG Game = "ONE_PIECE_TCG"
	GameSoccerCards Game = "SOCCER_CARDS"
)

type CardType string

const (
	CardTypeCharacter CardType = "CHARACTER"
	CardTypeEvent     CardType = "EVENT"
	CardTypeStage     CardType = "STAGE"
	CardTypeLeader    CardType = "LEADER"
)

// Card is the root entity. Documents are schemaless on the store side; every
// field besides the id is optional at creation time.
type Card struct {
	ID       string   `json:"id" bson:"_id"`
	Name     string   `json:"name" bson:"name"`
	CardType CardType `json:"cardType" bson:"cardType"`
	Game     Game     `json:"game" bson:"game"`

	// Trading-card attributes (One Piece TCG)
	Color     string `json:"color,omitempty" bson:"color,omitempty"`
	Cost      *int   `json:"cost,omitempty" bson:"cost,omitempty"`
	Power     *int   `json:"power,omitempty" bson:"power,omitempty"`
	Counter   *int   `json:"counter,omitempty" bson:"counter,omitempty"`
	Attribute string `json:"attribute,omitempty" bson:"attribute,omitempty"`
	Effect    string `json:"effect,omitempty" bson:"effect,omitempty"`
	Trigger   string `json:"trigger,omitempty" bson:"trigger,omitempty"`

	// Sports-card attributes
	PlayerName string `json:"playerName,omitempty" bson:"playerName,omitempty"`
	Team       string `json:"team,omitempty" bson:"team,omitempty"`
	League     string `json:"league,omitempty" bson:"league,omitempty"`
	Position   string `json:"position,omitempty" bson:"position,omitempty"`
	Rating     *int   `json:"rating,omitempty" bson:"rating,omitempty"`
	Season     string `json:"season,omitempty" bson:"season,omitempty"`

	// Shared attributes
	Set          string         `json:"set,omitempty" bson:"set,omitempty"`
	SetCode      string         `json:"setCode,omitempty" bson:"setCode,omitempty"`
	Number       string         `json:"number,omitempty" bson:"number,omitempty"`
	Rarity       string         `json:"rarity,omitempty" bson:"rarity,omitempty"`
	ImageURL     string         `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Artist       string         `json:"artist,omitempty" bson:"artist,omitempty"`
	CurrentPrice *float64       `json:"currentPrice,omitempty" bson:"currentPrice,omitempty"`
	ReleaseDate  string         `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	Tags         []string       `json:"tags,omitempty" bson:"tags,omitempty"`
	Attributes   map[string]any `json:"attributes,omitempty" bson:"attributes,omitempty"`

	// Metadata, milliseconds since epoch
	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
