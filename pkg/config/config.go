package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	LogLevel    string

	JWTSecret   string
	TokenExpiry time.Duration

	// Page limits for the global and author feeds. Both default to the same
	// size but are configured independently.
	FeedPageLimit       int
	AuthorFeedPageLimit int

	// Poll interval of post watch streams.
	WatchInterval time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", "host=localhost user=parrot password=parrot dbname=parrot port=5432 sslmode=disable"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenExpiry:         getEnvDuration("TOKEN_EXPIRY", 24*time.Hour),
		FeedPageLimit:       getEnvInt("FEED_PAGE_LIMIT", 10),
		AuthorFeedPageLimit: getEnvInt("AUTHOR_FEED_PAGE_LIMIT", 10),
		WatchInterval:       getEnvDuration("WATCH_INTERVAL", time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
