package config

import (
	"os"
	"time"
)

type Config struct {
	// ListenAddr is the address the web frontend binds to.
	ListenAddr string

	// APIBaseURL is the base URL of the Govista REST API.
	APIBaseURL string

	// StripePublishableKey is handed to the payment page. Missing key
	// means payments will not work but the app still runs.
	StripePublishableKey string

	SessionTTL time.Duration
}

func Load() Config {
	return Config{
		ListenAddr:           env("LISTEN_ADDR", ":8080"),
		APIBaseURL:           env("GOVISTA_API_URL", "http://localhost:4000/api"),
		StripePublishableKey: os.Getenv("STRIPE_PUBLISHABLE_KEY"),
		SessionTTL:           duration("SESSION_TTL", 12*time.Hour),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
