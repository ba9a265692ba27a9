package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Driver string // "sqlite3" or "postgres"
	Path   string // SQLite database file path
	URL    string // PostgreSQL connection string, required when Driver is "postgres"
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Address string // listen address (e.g., ":8080")
}

// Load loads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite3"),
			Path:   getEnv("DB_PATH", "todos.db"),
			URL:    getEnv("DATABASE_URL", ""),
		},
		HTTP: HTTPConfig{
			Address: getEnv("HTTP_ADDRESS", ":8080"),
		},
	}

	// Validate critical settings
	switch cfg.Database.Driver {
	case "sqlite3":
	case "postgres":
		if cfg.Database.URL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is not set; required when DB_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite3 or postgres)", cfg.Database.Driver)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// String returns a string representation of the config (the connection URL
// may carry credentials, so it is masked).
func (c *Config) String() string {
	url := c.Database.URL
	if url != "" {
		url = "*** (masked) ***"
	}
	return fmt.Sprintf("Config{Driver: %s, Path: %s, URL: %s, HTTP: %s}",
		c.Database.Driver, c.Database.Path, url, c.HTTP.Address)
}
