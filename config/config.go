package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported AI providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

const (
	defaultOpenAIModel = "gpt-4.1-mini"
	defaultGeminiModel = "gemini-2.5-flash"
)

// Config holds application configuration
type Config struct {
	// AI Provider
	AIProvider    string
	AIModel       string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string
	GeminiBaseURL string

	// Catalog
	CatalogSize int
	CatalogSeed uint64

	// Server
	ServerPort string
	SessionTTL time.Duration
	LogLevel   slog.Level
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		AIProvider:    strings.ToLower(getEnv("AI_PROVIDER", ProviderOpenAI)),
		AIModel:       os.Getenv("AI_MODEL"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),

		CatalogSize: getInt("CATALOG_SIZE", 50),
		CatalogSeed: getUint64("CATALOG_SEED", 0),

		ServerPort: getEnv("SERVER_PORT", "8080"),
		SessionTTL: getDuration("SESSION_TTL", 30*time.Minute),
		LogLevel:   getLevel("LOG_LEVEL", slog.LevelInfo),
	}

	switch config.AIProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		slog.Warn("unknown AI_PROVIDER, using openai as fallback", "provider", config.AIProvider)
		config.AIProvider = ProviderOpenAI
	}

	if config.AIModel == "" {
		config.AIModel = defaultOpenAIModel
		if config.AIProvider == ProviderGemini {
			config.AIModel = defaultGeminiModel
		}
	}

	if config.CatalogSize < 1 {
		slog.Warn("CATALOG_SIZE must be positive, using 50", "value", config.CatalogSize)
		config.CatalogSize = 50
	}

	// A missing key is not fatal: every chat turn fails with a hint instead
	if !config.HasCredential() {
		slog.Warn(config.CredentialEnv() + " not set")
	}

	return config
}

// HasCredential reports whether the selected provider has an API key
func (c *Config) HasCredential() bool {
	if c.AIProvider == ProviderGemini {
		return c.GeminiAPIKey != ""
	}
	return c.OpenAIAPIKey != ""
}

// CredentialEnv names the environment variable holding the selected provider's key
func (c *Config) CredentialEnv() string {
	if c.AIProvider == ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}

// CredentialHint is shown to the user when a turn fails without a key
func (c *Config) CredentialHint() string {
	if c.HasCredential() {
		return ""
	}
	return "Please set " + c.CredentialEnv() + " environment variable."
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func getUint64(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		slog.Warn("invalid unsigned integer, using default", "key", key, "value", value)
		return defaultValue
	}
	return n
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", value)
		return defaultValue
	}
	return d
}

func getLevel(key string, defaultValue slog.Level) slog.Level {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		slog.Warn("invalid log level, using default", "key", key, "value", value)
		return defaultValue
	}
	return level
}
