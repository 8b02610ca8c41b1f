// Package config provides configuration for the Gaia service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Form submission database
	DatabaseURL string

	// Completion service
	GeminiAPIKey string
	Model        string
	FastModel    string
	LLMTimeout   time.Duration

	// Content
	BadWordsPath string
	FAQPath      string

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPPort:     getEnvInt("HTTP_PORT", 8000),
		DatabaseURL:  getEnv("DATABASE_URL", "file:gaia.db?cache=shared&mode=rwc"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		Model:        getEnv("GAIA_MODEL", "gemini-2.5-flash"),
		FastModel:    getEnv("GAIA_FAST_MODEL", "gemini-2.0-flash"),
		LLMTimeout:   time.Duration(getEnvInt("LLM_TIMEOUT_MS", 120000)) * time.Millisecond,
		BadWordsPath: getEnv("BADWORDS_PATH", "badwords.txt"),
		FAQPath:      getEnv("FAQ_PATH", "faq.txt"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
