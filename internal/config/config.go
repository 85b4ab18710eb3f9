// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// the server, the Messenger platform credentials, and outbound delivery.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Messenger Platform Configuration
	AppSecret       string // Shared secret used to verify callback signatures
	VerifyToken     string // Token echoed during subscription verification
	PageAccessToken string // Token used by the Send API client
	GraphAPIBaseURL string // Send API base URL (overridable for tests)

	// Sentry Configuration (optional)
	SentryDSN         string
	SentryEnvironment string
	SentrySampleRate  float64

	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Bot Configuration (embedded)
	Bot BotConfig
}

// BotConfig holds webhook and delivery configuration
type BotConfig struct {
	// SendTimeout bounds a single Send API call.
	SendTimeout time.Duration

	// MaxEventsPerWebhook caps the events processed from one callback batch.
	MaxEventsPerWebhook int

	// ProductCardCount is the number of demo product cards in the carousel.
	ProductCardCount int
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first, then reads from env vars.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		AppSecret:       getEnv("MESSENGER_APP_SECRET", ""),
		VerifyToken:     getEnv("MESSENGER_VERIFY_TOKEN", ""),
		PageAccessToken: getEnv("MESSENGER_PAGE_ACCESS_TOKEN", ""),
		GraphAPIBaseURL: getEnv("MESSENGER_GRAPH_API_URL", "https://graph.facebook.com/v2.6"),

		SentryDSN:         getEnv("SENTRY_DSN", ""),
		SentryEnvironment: getEnv("SENTRY_ENVIRONMENT", "production"),
		SentrySampleRate:  getFloatEnv("SENTRY_SAMPLE_RATE", 1.0),

		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", GracefulShutdown),

		Bot: BotConfig{
			SendTimeout:         getDurationEnv("SEND_TIMEOUT", SendRequest),
			MaxEventsPerWebhook: getIntEnv("MAX_EVENTS_PER_WEBHOOK", 100),
			ProductCardCount:    getIntEnv("PRODUCT_CARD_COUNT", 3),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.AppSecret == "" {
		errs = append(errs, errors.New("MESSENGER_APP_SECRET is required"))
	}
	if c.VerifyToken == "" {
		errs = append(errs, errors.New("MESSENGER_VERIFY_TOKEN is required"))
	}
	if c.PageAccessToken == "" {
		errs = append(errs, errors.New("MESSENGER_PAGE_ACCESS_TOKEN is required"))
	}
	if c.GraphAPIBaseURL == "" {
		errs = append(errs, errors.New("MESSENGER_GRAPH_API_URL is required"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if err := c.Bot.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("bot config: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks bot configuration values
func (c *BotConfig) Validate() error {
	var errs []error

	if c.SendTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SEND_TIMEOUT must be positive, got %v", c.SendTimeout))
	}
	if c.MaxEventsPerWebhook <= 0 {
		errs = append(errs, fmt.Errorf("MAX_EVENTS_PER_WEBHOOK must be positive, got %d", c.MaxEventsPerWebhook))
	}
	if c.ProductCardCount <= 0 {
		errs = append(errs, fmt.Errorf("PRODUCT_CARD_COUNT must be positive, got %d", c.ProductCardCount))
	}

	return errors.Join(errs...)
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
