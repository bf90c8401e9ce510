package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/cardvault/backend/internal/metrics"
)

// Bounded number of per-client limiters kept in memory.
const limiterCacheSize = 1024

// MetricsMiddleware records the request counter and latency histogram for
// every request, labeled by route template rather than raw path.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}

// RateLimitMiddleware enforces a per-client-IP token bucket. Limiters live
// in an LRU so an abusive scan cannot grow memory without bound; evicting
// a limiter just resets that client's bucket.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	limiters, _ := lru.New[string, *rate.Limiter](limiterCacheSize)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(rps), burst)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			metrics.RateLimitedTotal.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
