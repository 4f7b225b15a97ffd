package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	LogLevel      string
	PublicBaseURL string

	// Upstream data providers
	OpenMeteoBaseURL string
	GeocodingBaseURL string

	// Default IANA timezone for requests that omit tz
	DefaultTimezone string

	// OpenAI configuration (outlook text on the wallpaper)
	OpenAIAPIKey       string
	OpenAIOutlookModel string

	// OpenTelemetry OTLP trace export
	OTLPEndpoint   string
	OTLPAuthHeader string
	Environment    string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		OpenMeteoBaseURL: getEnv("OPENMETEO_BASE_URL", "https://api.open-meteo.com"),
		GeocodingBaseURL: getEnv("GEOCODING_BASE_URL", "https://geocoding-api.open-meteo.com"),

		DefaultTimezone: getEnv("DEFAULT_TIMEZONE", "UTC"),

		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIOutlookModel: getEnv("OPENAI_OUTLOOK_MODEL", "gpt-4o-mini"),

		OTLPEndpoint:   getEnv("OTLP_ENDPOINT", ""),
		OTLPAuthHeader: getEnv("OTLP_AUTH_HEADER", ""),
		Environment:    getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
