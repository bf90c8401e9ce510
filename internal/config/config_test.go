package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("missing config file should not error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "cardvault" {
		t.Errorf("expected default database cardvault, got %s", cfg.Mongo.Database)
	}
	if cfg.Import.DataDir != "./data" {
		t.Errorf("expected default data dir ./data, got %s", cfg.Import.DataDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
port = "9090"
cors_origins = ["https://example.com"]
rate_limit_rps = 10.0
rate_limit_burst = 20

[mongo]
uri = "mongodb://localhost:27017"
database = "cards_test"

[import]
data_dir = "/srv/data"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "https://example.com" {
		t.Errorf("unexpected cors origins: %v", cfg.Server.CORSOrigins)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("unexpected mongo uri: %s", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "cards_test" {
		t.Errorf("unexpected database: %s", cfg.Mongo.Database)
	}
	if cfg.Import.DataDir != "/srv/data" {
		t.Errorf("unexpected data dir: %s", cfg.Import.DataDir)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\nport = \"9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "7070")
	t.Setenv("MONGO_URI", "mongodb://env-host:27017")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("PORT env should override file, got %s", cfg.Server.Port)
	}
	if cfg.Mongo.URI != "mongodb://env-host:27017" {
		t.Errorf("MONGO_URI env should override file, got %s", cfg.Mongo.URI)
	}
	if len(cfg.Server.CORSOrigins) != 2 {
		t.Errorf("expected 2 cors origins from env, got %v", cfg.Server.CORSOrigins)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not toml at all ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}
