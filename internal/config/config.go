// Package config loads application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Classifier ClassifierConfig
	CORS       CORSConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// DatabaseConfig holds the SQLite location.
type DatabaseConfig struct {
	Path string
}

// AuthConfig holds credential and session settings.
type AuthConfig struct {
	JWTSecret    string
	BcryptCost   int
	CookieSecure bool
}

// ClassifierConfig holds settings for the remote mood classifier.
type ClassifierConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// CORSConfig holds the origins the mobile client may call from.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first if present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			ReadHeaderTimeout: getDurationEnv("SERVER_READ_HEADER_TIMEOUT", 10*time.Second),
			IdleTimeout:       getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout:   getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "daybook.db"),
		},
		Auth: AuthConfig{
			JWTSecret:    os.Getenv("JWT_SECRET"),
			BcryptCost:   getIntEnv("BCRYPT_COST", 12),
			CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
		},
		Classifier: ClassifierConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			BaseURL: os.Getenv("GEMINI_BASE_URL"),
			Timeout: getDurationEnv("GEMINI_TIMEOUT", 30*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", nil),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(cfg.Auth.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	if cfg.Auth.BcryptCost < 4 || cfg.Auth.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Classifier.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", val)
		return defaultVal
	}
	return parsed
}

func getDurationEnv(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", val)
		return defaultVal
	}
	return parsed
}

func getSliceEnv(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parts := strings.Split(val, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
