package services

import (
	"testing"
	"time"

	"github.com/cardvault/backend/internal/models"
)

func TestApplyCardDefaultsGeneratesUniqueIDs(t *testing.T) {
	now := time.Now().UnixMilli()

	a := &models.Card{Name: "A"}
	b := &models.Card{Name: "B"}
	applyCardDefaults(a, now)
	applyCardDefaults(b, now)

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected generated ids to be non-empty")
	}
	if a.ID == b.ID {
		t.Errorf("expected unique ids, both were %s", a.ID)
	}
	if a.CreatedAt != now || a.UpdatedAt != now {
		t.Errorf("expected timestamps stamped to %d, got createdAt=%d updatedAt=%d", now, a.CreatedAt, a.UpdatedAt)
	}
}

func TestApplyCardDefaultsPreservesSuppliedID(t *testing.T) {
	card := &models.Card{ID: "card-123", Name: "A"}
	applyCardDefaults(card, time.Now().UnixMilli())

	if card.ID != "card-123" {
		t.Errorf("expected supplied id preserved, got %s", card.ID)
	}
}

func TestFilterByName(t *testing.T) {
	cards := []models.Card{
		{ID: "1", Name: "Monkey.D.Luffy"},
		{ID: "2", Name: "Roronoa Zoro"},
		{ID: "3", Name: "LUFFY (Alt Art)"},
	}

	matched := filterByName(cards, "luffy")
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches for 'luffy', got %d", len(matched))
	}
	if matched[0].ID != "1" || matched[1].ID != "3" {
		t.Errorf("expected input order preserved, got %s then %s", matched[0].ID, matched[1].ID)
	}
	for _, card := range matched {
		if card.Name == "Roronoa Zoro" {
			t.Error("Roronoa Zoro should not match 'luffy'")
		}
	}
}

func TestFilterByNameEmptyQueryKeepsAll(t *testing.T) {
	cards := []models.Card{
		{Name: "Monkey.D.Luffy"},
		{Name: "Roronoa Zoro"},
	}

	if got := filterByName(cards, ""); len(got) != len(cards) {
		t.Errorf("empty query should keep all cards, got %d of %d", len(got), len(cards))
	}
}

func TestFilterByNameNoMatches(t *testing.T) {
	cards := []models.Card{{Name: "Nami"}}

	matched := filterByName(cards, "luffy")
	if len(matched) != 0 {
		t.Errorf("expected no matches, got %d", len(matched))
	}
}
