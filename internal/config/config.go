package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port                int
	MongoURL            string
	DBName              string
	StripeAPIKey        string
	StripeWebhookSecret string
}

// Load reads configuration from environment variables with sensible defaults.
// The Stripe keys are optional: without them the server still serves the
// catalog, and payment endpoints respond 500 "not configured".
func Load() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8001"))

	return &Config{
		Port:                port,
		MongoURL:            getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:              getEnv("DB_NAME", "test_database"),
		StripeAPIKey:        getEnv("STRIPE_API_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
