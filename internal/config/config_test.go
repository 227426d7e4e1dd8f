package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bookcatalog/internal/logging"
)

var allKeys = []string{
	"APP_ADDR", "LOG_LEVEL", "LOG_FORMAT", "SEARCH_STRICT", "RATE_LIMIT_RPS",
	"RATE_LIMIT_BURST", "MAX_BODY_BYTES", "CORS_ALLOWED_ORIGINS",
	"ENABLE_DEBUG_ROUTES", "CATALOG_SEED_FILE", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.LogLevel != logging.LevelInfo || cfg.LogFormat != logging.FormatText {
		t.Errorf("log config = %v/%v", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.SearchStrict || cfg.EnableDebugRoutes {
		t.Error("flags should default to false")
	}
	if cfg.RateLimitRPS != 20 || cfg.RateLimitBurst != 40 {
		t.Errorf("rate limit = %v/%v", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Errorf("MaxBodyBytes = %d", cfg.MaxBodyBytes)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
	if cfg.CORSAllowedOrigins != nil || cfg.SeedFile != "" {
		t.Errorf("unexpected cors/seed: %v %q", cfg.CORSAllowedOrigins, cfg.SeedFile)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SEARCH_STRICT", "true")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ENABLE_DEBUG_ROUTES", "1")
	t.Setenv("CATALOG_SEED_FILE", "books.json")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.LogLevel != logging.LevelDebug || cfg.LogFormat != logging.FormatJSON {
		t.Errorf("unexpected basics: %+v", cfg)
	}
	if !cfg.SearchStrict || !cfg.EnableDebugRoutes {
		t.Error("expected flags to be set")
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 5 || cfg.MaxBodyBytes != 2048 {
		t.Errorf("unexpected limits: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.SeedFile != "books.json" || cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("unexpected seed/shutdown: %+v", cfg)
	}
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"LOG_LEVEL":        "loud",
		"LOG_FORMAT":       "xml",
		"SEARCH_STRICT":    "maybe",
		"RATE_LIMIT_RPS":   "fast",
		"RATE_LIMIT_BURST": "-1",
		"MAX_BODY_BYTES":   "0",
		"SHUTDOWN_TIMEOUT": "10",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".env"), []byte("APP_ADDR=:1111\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("APP_ADDR", ":2222")
	t.Chdir(tmp)

	LoadEnvFiles()

	if got := os.Getenv("APP_ADDR"); got != ":2222" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}

func TestLoadEnvFiles_FillsMissingEnv(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, ".env.local"), []byte("CATALOG_SEED_FILE=seed.json\n"), 0644); err != nil {
		t.Fatalf("write .env.local: %v", err)
	}

	t.Setenv("CATALOG_SEED_FILE", "")
	os.Unsetenv("CATALOG_SEED_FILE")
	t.Chdir(tmp)

	LoadEnvFiles()

	if got := os.Getenv("CATALOG_SEED_FILE"); got != "seed.json" {
		t.Fatalf("expected value from .env.local, got %q", got)
	}
}
