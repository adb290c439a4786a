package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogDir         string
	APIKey         string // API key for authentication
	DatabaseURL    string // empty runs the in-memory runtime instead of Postgres
	TrustedProxies []string
	PolicyPath     string
	Configurations []string // configuration names registered at startup
	SessionTTL     time.Duration
	SessionCap     int
	JobQueueSize   int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be using real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", "INFO"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		APIKey:         getEnv("API_KEY", ""),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		PolicyPath:     getEnv("POLICY_PATH", ""),
		Configurations: getEnvAsList("CONFIGURATIONS"),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		SessionCap:     getEnvAsInt("SESSION_CAP", 256),
		JobQueueSize:   getEnvAsInt("JOB_QUEUE_SIZE", 100),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// HasDatabase reports whether a Postgres connection string was configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsList splits a comma-separated variable, trimming whitespace and
// dropping empty entries. An unset or empty variable yields nil.
func getEnvAsList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
