package config

import (
	"fmt"
	"os"
)

// Config is the whole application configuration, read from env.
type Config struct {
	Port   string // server port
	GoEnv  string // dev/prod
	FEURL  string // storefront origin, for CORS
	Secret string // JWT signing secret

	// Postgres. Empty DatabaseURL in dev falls back to the seeded
	// in-memory catalog.
	DatabaseURL string

	// Redis, holds the per-user carts.
	RedisAddr     string
	RedisPassword string

	// Base URL prefixed to relative product image paths.
	AssetBaseURL string

	// Seed admin account for the in-memory user store (dev only).
	AdminEmail    string
	AdminPassword string
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		Port:   os.Getenv("PORT"),
		GoEnv:  os.Getenv("GO_ENV"),
		FEURL:  getenv("FE_URL", "http://localhost:3000"),
		Secret: os.Getenv("JWT_SECRET"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		AssetBaseURL: os.Getenv("ASSET_BASE_URL"),

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	// required
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.Secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GoEnv != "dev" && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required outside dev")
	}

	return cfg, nil
}

// IsDev reports whether the app runs against the seeded in-memory stores.
func (c Config) IsDev() bool {
	return c.GoEnv == "dev" && c.DatabaseURL == ""
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
