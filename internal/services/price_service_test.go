package services

import (
	"math"
	"testing"
	"time"

	"github.com/cardvault/backend/internal/models"
)

func TestApplyPricePointDefaults(t *testing.T) {
	now := time.Now().UnixMilli()

	point := &models.PriceHistory{CardID: "card-1", Price: 12.5}
	applyPricePointDefaults(point, now)

	if point.ID == "" {
		t.Error("expected generated id")
	}
	if point.CreatedAt != now {
		t.Errorf("expected createdAt=%d, got %d", now, point.CreatedAt)
	}
	if point.Timestamp != now {
		t.Errorf("expected timestamp defaulted to now, got %d", point.Timestamp)
	}
	if point.Currency != "USD" {
		t.Errorf("expected default currency USD, got %s", point.Currency)
	}
	if point.Condition != "Near Mint" {
		t.Errorf("expected default condition Near Mint, got %s", point.Condition)
	}
}

func TestApplyPricePointDefaultsKeepsSuppliedValues(t *testing.T) {
	now := time.Now().UnixMilli()
	ts := now - 5*dayMillis

	point := &models.PriceHistory{
		ID:        "point-1",
		CardID:    "card-1",
		Price:     9.99,
		Currency:  "EUR",
		Condition: "Mint",
		Timestamp: ts,
	}
	applyPricePointDefaults(point, now)

	if point.ID != "point-1" || point.Currency != "EUR" || point.Condition != "Mint" || point.Timestamp != ts {
		t.Errorf("supplied fields should be preserved, got %+v", point)
	}
}

func TestComputeChange(t *testing.T) {
	change := computeChange(40.0, 50.0)

	if change.OldPrice != 40.0 || change.NewPrice != 50.0 {
		t.Errorf("unexpected prices: %+v", change)
	}
	if change.Change != 10.0 {
		t.Errorf("expected change=10.0, got %v", change.Change)
	}
	if change.ChangePercent != 25.0 {
		t.Errorf("expected changePercent=25.0, got %v", change.ChangePercent)
	}
}

func TestComputeChangeNegative(t *testing.T) {
	change := computeChange(50.0, 40.0)

	if change.Change != -10.0 {
		t.Errorf("expected change=-10.0, got %v", change.Change)
	}
	if change.ChangePercent != -20.0 {
		t.Errorf("expected changePercent=-20.0, got %v", change.ChangePercent)
	}
}

func TestSimulatedSeries(t *testing.T) {
	now := time.Now().UnixMilli()
	days := 30
	base := 40.0

	points := simulatedSeries("card-1", base, days, now)
	if len(points) != days+1 {
		t.Fatalf("expected %d points, got %d", days+1, len(points))
	}

	for i, point := range points {
		if point.CardID != "card-1" {
			t.Fatalf("point %d has wrong cardId %s", i, point.CardID)
		}
		if point.Source != models.SourceSimulated {
			t.Fatalf("point %d has wrong source %s", i, point.Source)
		}
		want := now - int64(days-i)*dayMillis
		if point.Timestamp != want {
			t.Fatalf("point %d timestamp=%d, want %d", i, point.Timestamp, want)
		}
		if i > 0 && points[i-1].Timestamp >= point.Timestamp {
			t.Fatalf("timestamps not strictly ascending at point %d", i)
		}
		// Fluctuation is +/-10% of base, trend tops out at days*1%.
		maxDrift := base*0.1 + float64(days)*base*0.01
		if math.Abs(point.Price-base) > maxDrift+1e-9 {
			t.Fatalf("point %d price %v outside expected band around %v", i, point.Price, base)
		}
	}

	if points[len(points)-1].Timestamp != now {
		t.Errorf("last point should land on now, got %d", points[len(points)-1].Timestamp)
	}
}

func TestSimulatedSeriesZeroDays(t *testing.T) {
	now := time.Now().UnixMilli()

	points := simulatedSeries("card-1", 10.0, 0, now)
	if len(points) != 1 {
		t.Fatalf("expected a single point for zero days, got %d", len(points))
	}
	if points[0].Timestamp != now {
		t.Errorf("expected timestamp now, got %d", points[0].Timestamp)
	}
}
