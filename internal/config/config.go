package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	// OpenAI
	OpenAIAPIKey string
	Model        string

	// StaticDir is served at the site root when it exists. The front-end
	// itself is not part of this service.
	StaticDir string

	// StrictPersistence turns the persistence failures that are normally
	// logged and ignored (submission insert, seed message, assistant
	// append) into request-fatal errors. Default preserves the
	// availability-over-durability policy of the original design.
	StrictPersistence bool
}

// Load reads configuration from environment variables. In development it
// loads from a .env file if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:             getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		StaticDir:         getEnv("STATIC_DIR", "static"),
		StrictPersistence: getBool("STRICT_PERSISTENCE", false),
	}

	if cfg.Env == "production" {
		if cfg.DatabaseURL == "" {
			panic("DATABASE_URL is required in production")
		}
		if cfg.OpenAIAPIKey == "" {
			panic("OPENAI_API_KEY is required in production")
		}
	}

	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
