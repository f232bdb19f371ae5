package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required
	ChatAPIKey string
	DataAPIKey string

	// Optional with defaults
	Provider      string
	ChatModel     string
	DataModel     string
	Temperature   float64
	HTTPPort      int
	HistoryWindow int
	RetryAttempts int
	RetryDelay    time.Duration
}

func LoadFromEnv() *Config {
	cfg := &Config{
		// Required
		ChatAPIKey: getEnvOrDefault("REMINDME_CHAT_API_KEY", os.Getenv("GEMINI_API_KEY")),
		DataAPIKey: getEnvOrDefault("REMINDME_DATA_API_KEY", os.Getenv("GEMINI_API_KEY")),

		// Optional with defaults
		Provider:      getEnvOrDefault("REMINDME_PROVIDER", "gemini"),
		ChatModel:     getEnvOrDefault("REMINDME_CHAT_MODEL", "gemini-1.5-flash"),
		DataModel:     getEnvOrDefault("REMINDME_DATA_MODEL", "gemini-1.5-flash"),
		Temperature:   getEnvAsFloatOrDefault("REMINDME_TEMPERATURE", 0.1),
		HTTPPort:      getEnvAsIntOrDefault("REMINDME_HTTP_PORT", 8080),
		HistoryWindow: getEnvAsIntOrDefault("REMINDME_HISTORY_WINDOW", 5),
		RetryAttempts: getEnvAsIntOrDefault("REMINDME_RETRY_ATTEMPTS", 2),
		RetryDelay:    getEnvAsDurationOrDefault("REMINDME_RETRY_DELAY", time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
