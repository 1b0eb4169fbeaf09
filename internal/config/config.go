// ABOUTME: Centralized configuration for the pointwise console and bot
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cast"
)

// Config holds all configuration for pointwise
type Config struct {
	// Logging settings
	LogLevel  string
	LogFormat string

	// Point generation settings
	RandomMin    int
	RandomMax    int
	DefaultCount int

	// Bot settings
	BotName     string
	BotMaxCount int
	SessionTTL  time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:     getEnv("POINTWISE_LOG_LEVEL", "info"),
		LogFormat:    getEnv("POINTWISE_LOG_FORMAT", "text"),
		RandomMin:    getEnvInt("POINTWISE_RANDOM_MIN", -10),
		RandomMax:    getEnvInt("POINTWISE_RANDOM_MAX", 10),
		DefaultCount: getEnvInt("POINTWISE_DEFAULT_COUNT", 5),
		BotName:      getEnv("POINTWISE_BOT_NAME", "Pointwise Bot"),
		BotMaxCount:  getEnvInt("POINTWISE_BOT_MAX_COUNT", 20),
		SessionTTL:   getEnvDuration("POINTWISE_SESSION_TTL", 30*time.Minute),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.RandomMin > c.RandomMax {
		return fmt.Errorf("POINTWISE_RANDOM_MIN (%d) must not exceed POINTWISE_RANDOM_MAX (%d)", c.RandomMin, c.RandomMax)
	}
	if c.DefaultCount <= 0 {
		return fmt.Errorf("POINTWISE_DEFAULT_COUNT must be positive, got %d", c.DefaultCount)
	}
	if c.BotMaxCount < 0 {
		return fmt.Errorf("POINTWISE_BOT_MAX_COUNT must be 0 (no cap) or positive, got %d", c.BotMaxCount)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("POINTWISE_SESSION_TTL must be positive, got %v", c.SessionTTL)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("POINTWISE_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := cast.ToIntE(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := cast.ToDurationE(v); err == nil {
			return d
		}
	}
	return defaultVal
}
