package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardvault/backend/internal/api"
	"github.com/cardvault/backend/internal/config"
	"github.com/cardvault/backend/internal/database"
	"github.com/cardvault/backend/internal/services"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to the document store; the handle is shared by all requests
	// for the life of the process.
	db, err := database.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize services
	cardService := services.NewCardService(db, cfg.Import.DataDir)
	collectionService := services.NewCollectionService(db, cardService)
	priceService := services.NewPriceService(db, cardService)

	// Setup router
	router := api.SetupRouter(cfg.Server, cardService, collectionService, priceService)

	// Create HTTP server for graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests a deadline to complete
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := db.Client().Disconnect(shutdownCtx); err != nil {
		log.Printf("Failed to disconnect from database: %v", err)
	}

	log.Println("Server exited")
}
