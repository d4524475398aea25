package config

import (
	"os"
	"time"
)

type Config struct {
	OwnerOpenID string

	// Default provider triple used for chat turns while no stored provider
	// is active.
	DefaultProvider string
	DefaultModel    string
	DefaultAPIKey   string

	ProbeTimeout time.Duration
	ChatTimeout  time.Duration
}

func Load() *Config {
	return &Config{
		OwnerOpenID:     os.Getenv("OWNER_OPEN_ID"),
		DefaultProvider: envOr("DEFAULT_LLM_PROVIDER", "openai"),
		DefaultModel:    envOr("DEFAULT_LLM_MODEL", "gpt-4o-mini"),
		DefaultAPIKey:   os.Getenv("DEFAULT_LLM_API_KEY"),
		ProbeTimeout:    durationOr("PROVIDER_PROBE_TIMEOUT", 15*time.Second),
		ChatTimeout:     durationOr("CHAT_TIMEOUT", 60*time.Second),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
