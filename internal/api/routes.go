package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cardvault/backend/internal/api/handlers"
	"github.com/cardvault/backend/internal/config"
	"github.com/cardvault/backend/internal/services"
)

func SetupRouter(cfg config.ServerConfig, cardService *services.CardService, collectionService *services.CollectionService, priceService *services.PriceService) *gin.Engine {
	router := gin.Default()

	// CORS configuration - allow origins from config or use defaults
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = false
	router.Use(cors.New(corsConfig))

	router.Use(MetricsMiddleware())

	// Initialize handlers
	cardHandler := handlers.NewCardHandler(cardService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	priceHandler := handlers.NewPriceHandler(priceService)

	// API routes
	api := router.Group("/api")
	if cfg.RateLimitRPS > 0 {
		api.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}
	{
		// Card routes
		cards := api.Group("/cards")
		{
			cards.GET("", cardHandler.GetAllCards)
			cards.POST("", cardHandler.CreateCard)
			cards.GET("/search", cardHandler.SearchCards)
			cards.GET("/import", cardHandler.ImportCards)
			cards.POST("/sample", cardHandler.CreateSampleCard)
			cards.GET("/:id", cardHandler.GetCard)
			cards.DELETE("/:id", cardHandler.DeleteCard)
		}

		// Collection routes
		collections := api.Group("/collections")
		{
			collections.GET("/items/:itemId", collectionHandler.GetItem)
			collections.DELETE("/items/:itemId", collectionHandler.RemoveItem)
			collections.GET("/:userId", collectionHandler.GetUserCollection)
			collections.POST("/:userId", collectionHandler.AddToCollection)
			collections.GET("/:userId/value", collectionHandler.GetTotalValue)
			collections.GET("/:userId/stats", collectionHandler.GetStats)
		}

		// Price routes
		prices := api.Group("/prices")
		{
			prices.POST("", priceHandler.AddPricePoint)
			prices.POST("/simulate-all", priceHandler.SimulateHistoryAll)
			prices.GET("/card/:cardId", priceHandler.GetHistory)
			prices.GET("/card/:cardId/range", priceHandler.GetHistoryRange)
			prices.GET("/card/:cardId/latest", priceHandler.GetLatest)
			prices.GET("/card/:cardId/change", priceHandler.GetChange)
			prices.POST("/card/:cardId/update-current", priceHandler.UpdateCurrentPrice)
			prices.POST("/card/:cardId/simulate", priceHandler.SimulateHistory)
		}
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
