package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Session settings for the login flow. Sessions live in a bounded
	// in-memory store and expire after SessionTTL.
	SessionTTL time.Duration
	SessionMax int
	AdminUser  string
	AdminPass  string
	LoginPath  string
	CookieName string

	// SearchCaseSensitive controls whether listing search uses LIKE or
	// ILIKE. The store's comparison default is not portable, so this is
	// explicit configuration rather than a hardcoded choice.
	SearchCaseSensitive bool
}

// Load loads the configuration from environment variables.
// A .env file is honored when present but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "stockroom"),
		AdminUser:   getEnv("ADMIN_USERNAME", "admin"),
		AdminPass:   getEnv("ADMIN_PASSWORD", ""),
		LoginPath:   getEnv("LOGIN_PATH", "/login"),
		CookieName:  getEnv("SESSION_COOKIE", "stockroom_session"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	ttlMinutes, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES value: %w", err)
	}
	cfg.SessionTTL = time.Duration(ttlMinutes) * time.Minute

	maxSessions, err := strconv.Atoi(getEnv("SESSION_MAX", "1024"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_MAX value: %w", err)
	}
	cfg.SessionMax = maxSessions

	caseSensitive, err := strconv.ParseBool(getEnv("SEARCH_CASE_SENSITIVE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEARCH_CASE_SENSITIVE value: %w", err)
	}
	cfg.SearchCaseSensitive = caseSensitive

	if cfg.AdminPass == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether the service runs with development defaults
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
