// Package config reads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bookcatalog/internal/logging"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration of cmd/api.
type Config struct {
	Addr      string
	LogLevel  logging.Level
	LogFormat logging.Format

	// SearchStrict makes an absent search filter match nothing.
	SearchStrict bool

	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64

	CORSAllowedOrigins []string
	EnableDebugRoutes  bool

	// SeedFile is a JSON array of books created at startup. Empty disables seeding.
	SeedFile        string
	ShutdownTimeout time.Duration
}

// LoadEnvFiles loads .env and .env.local from the working directory.
// Variables already present in the environment are never overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load reads .env files and then the environment. Every invalid value is
// reported in the returned error.
func Load() (Config, error) {
	LoadEnvFiles()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	cfg := Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		SeedFile:           os.Getenv("CATALOG_SEED_FILE"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	var err error
	cfg.LogLevel, err = logging.ParseLevel(getEnv("LOG_LEVEL", "info"))
	collect(wrap("LOG_LEVEL", err))
	cfg.LogFormat, err = logging.ParseFormat(getEnv("LOG_FORMAT", "text"))
	collect(wrap("LOG_FORMAT", err))

	cfg.SearchStrict, err = getBool("SEARCH_STRICT", false)
	collect(err)
	cfg.EnableDebugRoutes, err = getBool("ENABLE_DEBUG_ROUTES", false)
	collect(err)

	cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 20)
	collect(err)
	cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 40)
	collect(err)
	maxBody, err := getInt("MAX_BODY_BYTES", 1<<20)
	collect(err)
	cfg.MaxBodyBytes = int64(maxBody)

	cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	collect(err)

	if cfg.RateLimitRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must not be negative"))
	}
	if cfg.RateLimitBurst < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_BURST must not be negative"))
	}
	if cfg.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	return b, wrap(key, err)
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	return n, wrap(key, err)
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	return f, wrap(key, err)
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	return d, wrap(key, err)
}

func wrap(key string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", key, err)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
