package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	OpenFoodFacts OpenFoodFactsConfig `mapstructure:"openfoodfacts"`
	Cache         CacheConfig         `mapstructure:"cache"`
	Catalog       CatalogConfig       `mapstructure:"catalog"`
	Insights      InsightsConfig      `mapstructure:"insights"`
	RateLimit     RateLimitConfig     `mapstructure:"ratelimit"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// OpenFoodFactsConfig holds product database client configuration
type OpenFoodFactsConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	UserAgent         string        `mapstructure:"user_agent"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type            string        `mapstructure:"type"` // only "memory"
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// CatalogConfig controls the local fallback catalog. An empty path uses
// the embedded seed catalog.
type CatalogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// InsightsConfig holds the AI analyzer configuration for free-text entries
type InsightsConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds inbound rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/foodlens/")

	// FOODLENS_SERVER_PORT -> server.port
	v.SetEnvPrefix("FOODLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads ./.env if present. Variables already set in the
// environment win.
func loadEnvFile() error {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setDefaults sets default configuration values. Every key needs a default
// so AutomaticEnv can bind it during Unmarshal.
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"chrome-extension://*"})
	v.SetDefault("server.shutdown_timeout", "10s")

	// Product database defaults
	v.SetDefault("openfoodfacts.base_url", "https://world.openfoodfacts.org")
	v.SetDefault("openfoodfacts.user_agent", "FoodLens/1.0 (https://github.com/foodlens/backend)")
	v.SetDefault("openfoodfacts.timeout", "15s")
	v.SetDefault("openfoodfacts.requests_per_minute", 100)

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "24h")
	v.SetDefault("cache.cleanup_interval", "10m")

	// Catalog defaults
	v.SetDefault("catalog.enabled", true)
	v.SetDefault("catalog.path", "")

	// Insights defaults
	v.SetDefault("insights.enabled", false)
	v.SetDefault("insights.api_key", "")
	v.SetDefault("insights.base_url", "https://api.openai.com/v1")
	v.SetDefault("insights.model", "gpt-4o-mini")
	v.SetDefault("insights.timeout", "30s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 120)

	v.SetDefault("logging.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" {
		return fmt.Errorf("cache type must be 'memory', got: %s", config.Cache.Type)
	}

	if config.OpenFoodFacts.BaseURL == "" {
		return fmt.Errorf("product database base URL is required (set FOODLENS_OPENFOODFACTS_BASE_URL)")
	}

	if config.OpenFoodFacts.RequestsPerMinute <= 0 {
		return fmt.Errorf("openfoodfacts requests_per_minute must be positive, got: %d", config.OpenFoodFacts.RequestsPerMinute)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("ratelimit per_ip must not be negative, got: %d", config.RateLimit.PerIP)
	}

	if config.Insights.Enabled {
		if config.Insights.APIKey == "" {
			return fmt.Errorf("insights API key is required when insights are enabled (set FOODLENS_INSIGHTS_API_KEY)")
		}
		if config.Insights.Model == "" {
			return fmt.Errorf("insights model is required when insights are enabled")
		}
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging level must be one of debug, info, warn, error, got: %s", config.Logging.Level)
	}

	return nil
}
