// Package metrics provides Prometheus metrics for the card collection API.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/cardvault/backend/internal/models"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cardvault_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cardvault_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardvault_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)

	// Card Metrics
	CardsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardvault_cards_created_total",
			Help: "Total number of cards created",
		},
	)

	CardsImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardvault_cards_imported_total",
			Help: "Total number of cards created via bulk import",
		},
	)

	// Price Metrics
	PricePointsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cardvault_price_points_total",
			Help: "Total number of price history points recorded",
		},
	)

	// Collection Metrics, refreshed whenever stats are computed
	CollectionItemsTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cardvault_collection_items_total",
			Help: "Number of owned items in a user's collection at last stats computation",
		},
		[]string{"user"},
	)

	CollectionValueUSD = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cardvault_collection_value_usd",
			Help: "Estimated collection value in USD at last stats computation",
		},
		[]string{"user"},
	)
)

// UpdateCollectionMetrics records the outcome of a stats computation.
func UpdateCollectionMetrics(userID string, stats models.CollectionStats) {
	CollectionItemsTotal.WithLabelValues(userID).Set(float64(stats.UniqueCards))
	CollectionValueUSD.WithLabelValues(userID).Set(stats.TotalValue)
}
