// Package config loads process and site configuration.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
// StoreURI may be empty, which runs the site in catalog-only mode.
type Config struct {
	StoreURI string
	StoreDB  string
	Port     int
	Dev      bool
}

// Load reads configuration from a .env file (if present) and the
// environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := Config{
		StoreURI: os.Getenv("MONGODB_URI"),
		StoreDB:  envOr("MONGODB_DB", "asridev"),
		Port:     envInt("PORT", 8080),
		Dev:      os.Getenv("DEV_MODE") == "true",
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring non-numeric environment value", "key", key, "value", v)
		return fallback
	}
	return n
}
