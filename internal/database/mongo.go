package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cardvault/backend/internal/config"
)

const connectTimeout = 10 * time.Second

// Connect establishes the process-wide store handle. The connection string
// comes from the inline config/env value when present, otherwise from the
// configured credentials file. The returned database is shared across all
// requests and closed only at process exit via Disconnect on its client.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	uri, err := resolveURI(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Println("Database connected successfully")
	return client.Database(cfg.Database), nil
}

func resolveURI(cfg config.MongoConfig) (string, error) {
	if cfg.URI != "" {
		log.Println("Using mongo connection string from environment/config")
		return cfg.URI, nil
	}
	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return "", fmt.Errorf("failed to read credentials file: %w", err)
		}
		log.Printf("Using mongo connection string from %s", cfg.CredentialsFile)
		return strings.TrimSpace(string(data)), nil
	}
	return "", fmt.Errorf("no mongo connection configured (set mongo.uri, mongo.credentials_file, or MONGO_URI)")
}
