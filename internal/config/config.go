package config

import (
	"errors"
	"os"
	"strings"
)

type AppConfig struct {
	// Server
	HTTPAddr string
	Env      string

	// PostgreSQL
	DatabaseURL string

	// Redis (optional, enables the login rate limiter)
	RedisAddr string
	RedisPass string

	// Admin credentials and the session signing secret
	AuthSecret        string
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
}

// Load reads environment variables into AppConfig. Missing required
// secrets are a startup failure, never a per-request one.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Env:      getEnv("APP_ENV", "development"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASS"),

		AuthSecret:        os.Getenv("AUTH_SECRET"),
		AdminEmail:        strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if cfg.DatabaseURL == "" {
		return AppConfig{}, errors.New("DATABASE_URL is required")
	}
	if cfg.AuthSecret == "" {
		return AppConfig{}, errors.New("AUTH_SECRET is required")
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		return AppConfig{}, errors.New("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in a production-like
// environment; it controls the Secure flag on the session cookie.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
