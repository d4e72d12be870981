package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

var configEnvVars = []string{
	"FOODLENS_SERVER_PORT",
	"FOODLENS_SERVER_ENVIRONMENT",
	"FOODLENS_SERVER_ALLOWED_ORIGINS",
	"FOODLENS_SERVER_SHUTDOWN_TIMEOUT",
	"FOODLENS_OPENFOODFACTS_BASE_URL",
	"FOODLENS_OPENFOODFACTS_REQUESTS_PER_MINUTE",
	"FOODLENS_CACHE_TYPE",
	"FOODLENS_CACHE_TTL",
	"FOODLENS_CATALOG_ENABLED",
	"FOODLENS_CATALOG_PATH",
	"FOODLENS_INSIGHTS_ENABLED",
	"FOODLENS_INSIGHTS_API_KEY",
	"FOODLENS_INSIGHTS_MODEL",
	"FOODLENS_RATELIMIT_PER_IP",
	"FOODLENS_LOGGING_LEVEL",
}

// clearConfigEnv unsets every FOODLENS variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		if value, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
	t.Chdir(t.TempDir())
}

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		clearConfigEnv(t)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "chrome-extension://*" {
			t.Errorf("Server.AllowedOrigins = %v, want [chrome-extension://*]", cfg.Server.AllowedOrigins)
		}
		if cfg.Server.ShutdownTimeout != 10*time.Second {
			t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
		}
		if cfg.OpenFoodFacts.BaseURL != "https://world.openfoodfacts.org" {
			t.Errorf("OpenFoodFacts.BaseURL = %s, want https://world.openfoodfacts.org", cfg.OpenFoodFacts.BaseURL)
		}
		if cfg.OpenFoodFacts.RequestsPerMinute != 100 {
			t.Errorf("OpenFoodFacts.RequestsPerMinute = %d, want 100", cfg.OpenFoodFacts.RequestsPerMinute)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if !cfg.Catalog.Enabled {
			t.Error("Catalog.Enabled = false, want true")
		}
		if cfg.Insights.Enabled {
			t.Error("Insights.Enabled = true, want false")
		}
		if cfg.RateLimit.PerIP != 120 {
			t.Errorf("RateLimit.PerIP = %d, want 120", cfg.RateLimit.PerIP)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Logging.Level = %s, want info", cfg.Logging.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("FOODLENS_SERVER_PORT", "9090")
		t.Setenv("FOODLENS_SERVER_ENVIRONMENT", "production")
		t.Setenv("FOODLENS_SERVER_ALLOWED_ORIGINS", "chrome-extension://*,http://localhost:3000")
		t.Setenv("FOODLENS_OPENFOODFACTS_BASE_URL", "https://off.example.com")
		t.Setenv("FOODLENS_OPENFOODFACTS_REQUESTS_PER_MINUTE", "30")
		t.Setenv("FOODLENS_CACHE_TTL", "1h")
		t.Setenv("FOODLENS_CATALOG_ENABLED", "false")
		t.Setenv("FOODLENS_INSIGHTS_ENABLED", "true")
		t.Setenv("FOODLENS_INSIGHTS_API_KEY", "sk-test")
		t.Setenv("FOODLENS_RATELIMIT_PER_IP", "0")
		t.Setenv("FOODLENS_LOGGING_LEVEL", "debug")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if len(cfg.Server.AllowedOrigins) != 2 {
			t.Errorf("Server.AllowedOrigins = %v, want 2 entries", cfg.Server.AllowedOrigins)
		}
		if cfg.OpenFoodFacts.BaseURL != "https://off.example.com" {
			t.Errorf("OpenFoodFacts.BaseURL = %s, want https://off.example.com", cfg.OpenFoodFacts.BaseURL)
		}
		if cfg.OpenFoodFacts.RequestsPerMinute != 30 {
			t.Errorf("OpenFoodFacts.RequestsPerMinute = %d, want 30", cfg.OpenFoodFacts.RequestsPerMinute)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Catalog.Enabled {
			t.Error("Catalog.Enabled = true, want false")
		}
		if !cfg.Insights.Enabled || cfg.Insights.APIKey != "sk-test" {
			t.Errorf("Insights = %+v, want enabled with key sk-test", cfg.Insights)
		}
		if cfg.Insights.Model != "gpt-4o-mini" {
			t.Errorf("Insights.Model = %s, want gpt-4o-mini", cfg.Insights.Model)
		}
		if cfg.RateLimit.PerIP != 0 {
			t.Errorf("RateLimit.PerIP = %d, want 0", cfg.RateLimit.PerIP)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
		}
	})

	t.Run("reads values from .env file", func(t *testing.T) {
		clearConfigEnv(t)
		if err := os.WriteFile(".env", []byte("FOODLENS_SERVER_PORT=7070\n"), 0644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}
		t.Cleanup(func() { os.Unsetenv("FOODLENS_SERVER_PORT") })

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}
		if cfg.Server.Port != "7070" {
			t.Errorf("Server.Port = %s, want 7070", cfg.Server.Port)
		}
	})

	t.Run("fails validation when insights enabled without API key", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("FOODLENS_INSIGHTS_ENABLED", "true")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing insights API key")
		}
		if !strings.Contains(err.Error(), "insights API key is required") {
			t.Errorf("Load() error = %v, want 'insights API key is required'", err)
		}
	})

	t.Run("fails validation for invalid cache type", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv("FOODLENS_CACHE_TYPE", "redis")

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		t.Chdir(t.TempDir())

		if err := loadEnvFile(); err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("skips empty lines and comments", func(t *testing.T) {
		t.Chdir(t.TempDir())

		envContent := `
# This is a comment

TEST_SKIP_1=value1

TEST_SKIP_2=value2
# TEST_COMMENTED=should_not_load
`
		if err := os.WriteFile(".env", []byte(envContent), 0644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}
		t.Cleanup(func() {
			os.Unsetenv("TEST_SKIP_1")
			os.Unsetenv("TEST_SKIP_2")
		})

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_SKIP_1") != "value1" {
			t.Errorf("TEST_SKIP_1 not loaded correctly")
		}
		if os.Getenv("TEST_SKIP_2") != "value2" {
			t.Errorf("TEST_SKIP_2 not loaded correctly")
		}
		if os.Getenv("TEST_COMMENTED") != "" {
			t.Errorf("TEST_COMMENTED should not be loaded from comment")
		}
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("TEST_OVERRIDE", "existing-value")

		if err := os.WriteFile(".env", []byte("TEST_OVERRIDE=new-value"), 0644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}

		if os.Getenv("TEST_OVERRIDE") != "existing-value" {
			t.Errorf("TEST_OVERRIDE = %s, want existing-value (should not override)", os.Getenv("TEST_OVERRIDE"))
		}
	})
}

func validConfig() *Config {
	return &Config{
		OpenFoodFacts: OpenFoodFactsConfig{
			BaseURL:           "https://world.openfoodfacts.org",
			RequestsPerMinute: 100,
		},
		Cache:   CacheConfig{Type: "memory"},
		Logging: LoggingConfig{Level: "info"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(c *Config) {}},
		{name: "redis cache rejected", mutate: func(c *Config) { c.Cache.Type = "redis" }, wantErr: true},
		{name: "missing base url", mutate: func(c *Config) { c.OpenFoodFacts.BaseURL = "" }, wantErr: true},
		{name: "zero requests per minute", mutate: func(c *Config) { c.OpenFoodFacts.RequestsPerMinute = 0 }, wantErr: true},
		{name: "negative per-ip limit", mutate: func(c *Config) { c.RateLimit.PerIP = -1 }, wantErr: true},
		{name: "insights without key", mutate: func(c *Config) { c.Insights = InsightsConfig{Enabled: true, Model: "m"} }, wantErr: true},
		{name: "insights without model", mutate: func(c *Config) { c.Insights = InsightsConfig{Enabled: true, APIKey: "k"} }, wantErr: true},
		{name: "insights configured", mutate: func(c *Config) { c.Insights = InsightsConfig{Enabled: true, APIKey: "k", Model: "m"} }},
		{name: "disabled insights need no key", mutate: func(c *Config) { c.Insights = InsightsConfig{Model: ""} }},
		{name: "uppercase log level", mutate: func(c *Config) { c.Logging.Level = "WARN" }},
		{name: "unknown log level", mutate: func(c *Config) { c.Logging.Level = "trace" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
