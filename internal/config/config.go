package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Server ServerConfig `toml:"server"`
	Mongo  MongoConfig  `toml:"mongo"`
	Import ImportConfig `toml:"import"`
}

type ServerConfig struct {
	Port        string   `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`
	// Per-client request rate. Zero or negative disables rate limiting.
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

type MongoConfig struct {
	// URI is used directly when set. Otherwise CredentialsFile is read and
	// its contents used as the connection string. MONGO_URI and
	// MONGO_CREDENTIALS_FILE override both.
	URI             string `toml:"uri"`
	CredentialsFile string `toml:"credentials_file"`
	Database        string `toml:"database"`
}

type ImportConfig struct {
	// DataDir holds the bundled cards.json bulk-import dataset.
	DataDir string `toml:"data_dir"`
}

// Load reads the TOML config at path, then applies environment overrides.
// A missing file is not an error; defaults plus environment apply.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           "8080",
			RateLimitRPS:   50,
			RateLimitBurst: 100,
		},
		Mongo: MongoConfig{
			Database: "cardvault",
		},
		Import: ImportConfig{
			DataDir: "./data",
		},
	}

	if file, err := os.Open(path); err == nil {
		defer file.Close()
		if err := toml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = strings.Split(origins, ",")
	}
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Mongo.URI = uri
	}
	if file := os.Getenv("MONGO_CREDENTIALS_FILE"); file != "" {
		cfg.Mongo.CredentialsFile = file
	}
	if db := os.Getenv("MONGO_DATABASE"); db != "" {
		cfg.Mongo.Database = db
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.Import.DataDir = dir
	}
}
