package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Feed      FeedConfig
	Portfolio PortfolioConfig
	CORS      CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// FeedConfig holds configuration for the scraped-data feed.
type FeedConfig struct {
	// BaseURL is where the scraper publishes stocks.json, history.json
	// and news.json.
	BaseURL string
	// RefreshSchedule is a cron expression for reloading the feed. The
	// scraper runs daily, so the default re-reads shortly after midnight.
	RefreshSchedule string
}

// PortfolioConfig holds configuration for the portfolio store.
type PortfolioConfig struct {
	// Backend selects the persistence port implementation: "file" or
	// "sqlite".
	Backend string
	// FilePath is the holding document location for the file backend.
	FilePath string
	// DatabasePath is the SQLite database location for the sqlite backend.
	DatabasePath string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Backend values for PortfolioConfig.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5002"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Feed: FeedConfig{
			BaseURL:         getEnv("FEED_BASE_URL", "http://localhost:8000/data"),
			RefreshSchedule: getEnv("FEED_REFRESH_SCHEDULE", "30 0 * * *"),
		},
		Portfolio: PortfolioConfig{
			Backend:      getEnv("PORTFOLIO_BACKEND", BackendFile),
			FilePath:     getEnv("PORTFOLIO_FILE", "./data/portfolio.json"),
			DatabasePath: getEnv("PORTFOLIO_DB_PATH", "./data/rsebl_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
	}

	if config.Portfolio.Backend != BackendFile && config.Portfolio.Backend != BackendSQLite {
		return nil, fmt.Errorf("invalid PORTFOLIO_BACKEND %q: must be %q or %q",
			config.Portfolio.Backend, BackendFile, BackendSQLite)
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList splits a comma-separated list, trimming whitespace around
// entries and dropping empty ones.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
