package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service configuration, read from the environment with
// development-friendly defaults.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Upstream rainfall API.
	ProviderURL string
	HTTPTimeout time.Duration

	// Polling and retention.
	FetchInterval time.Duration
	Retention     time.Duration

	// Requests per minute per client IP.
	RateLimit int

	// Default lattice resolution for the heatmap grid.
	GridResolution int
}

// Load reads configuration from the environment. A .env file is honored when
// present but is optional.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:        getenvDefault("PORT", ":8080"),
		DBPath:      getenvDefault("DB_PATH", "./data/rainmap.db"),
		JWTSecret:   getenvDefault("JWT_SECRET", "change-me-in-production"),
		ProviderURL: os.Getenv("RAINFALL_API_URL"), // empty selects the default endpoint
		RateLimit:   getenvInt("RATE_LIMIT", 120),
	}

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.FetchInterval, err = getenvDuration("FETCH_INTERVAL", "5m"); err != nil {
		return nil, err
	}
	if cfg.Retention, err = getenvDuration("RETENTION", "168h"); err != nil {
		return nil, err
	}

	cfg.GridResolution = getenvInt("GRID_RESOLUTION", 50)
	if cfg.GridResolution <= 0 {
		return nil, fmt.Errorf("GRID_RESOLUTION must be positive")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
