package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Extractor ExtractorConfig
	Batch     BatchConfig
	States    StatesConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProviderConfig holds settings for a single extraction provider.
type ProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// ExtractorConfig holds extraction settings with multi-provider
// support. Secondary is optional.
type ExtractorConfig struct {
	Primary   ProviderConfig `mapstructure:"primary"`
	Secondary ProviderConfig `mapstructure:"secondary"`
}

// SecondaryConfig returns the secondary provider config, or nil if not
// configured.
func (e *ExtractorConfig) SecondaryConfig() *ProviderConfig {
	if e.Secondary.Provider != "" {
		return &e.Secondary
	}
	return nil
}

// BatchConfig holds batch processor settings.
type BatchConfig struct {
	Concurrency    int `mapstructure:"concurrency"`
	MaxRetries     int `mapstructure:"max_retries"`
	ItemTimeoutSec int `mapstructure:"item_timeout_secs"`
}

// StatesConfig points at an optional amended state-code table; empty
// means the embedded authority table.
type StatesConfig struct {
	TablePath string `mapstructure:"table_path"`
}

// Load reads configuration from environment variables with the
// SARALGST_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SARALGST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Extractor defaults
	v.SetDefault("extractor.primary.provider", "gemini")
	v.SetDefault("extractor.primary.api_key", "")
	v.SetDefault("extractor.primary.default_model", "gemini-2.0-flash")
	v.SetDefault("extractor.primary.timeout_secs", 120)
	v.SetDefault("extractor.secondary.provider", "")
	v.SetDefault("extractor.secondary.api_key", "")
	v.SetDefault("extractor.secondary.default_model", "")
	v.SetDefault("extractor.secondary.timeout_secs", 120)

	// Batch defaults
	v.SetDefault("batch.concurrency", 5)
	v.SetDefault("batch.max_retries", 2)
	v.SetDefault("batch.item_timeout_secs", 300)

	// State table defaults (empty = embedded table)
	v.SetDefault("states.table_path", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                       "SARALGST_SERVER_PORT",
		"server.read_timeout":               "SARALGST_SERVER_READ_TIMEOUT",
		"server.write_timeout":              "SARALGST_SERVER_WRITE_TIMEOUT",
		"server.environment":                "SARALGST_SERVER_ENVIRONMENT",
		"log.level":                         "SARALGST_LOG_LEVEL",
		"log.format":                        "SARALGST_LOG_FORMAT",
		"cors.allowed_origins":              "SARALGST_CORS_ALLOWED_ORIGINS",
		"extractor.primary.provider":        "SARALGST_EXTRACTOR_PRIMARY_PROVIDER",
		"extractor.primary.api_key":         "SARALGST_EXTRACTOR_PRIMARY_API_KEY",
		"extractor.primary.default_model":   "SARALGST_EXTRACTOR_PRIMARY_DEFAULT_MODEL",
		"extractor.primary.timeout_secs":    "SARALGST_EXTRACTOR_PRIMARY_TIMEOUT_SECS",
		"extractor.secondary.provider":      "SARALGST_EXTRACTOR_SECONDARY_PROVIDER",
		"extractor.secondary.api_key":       "SARALGST_EXTRACTOR_SECONDARY_API_KEY",
		"extractor.secondary.default_model": "SARALGST_EXTRACTOR_SECONDARY_DEFAULT_MODEL",
		"extractor.secondary.timeout_secs":  "SARALGST_EXTRACTOR_SECONDARY_TIMEOUT_SECS",
		"batch.concurrency":                 "SARALGST_BATCH_CONCURRENCY",
		"batch.max_retries":                 "SARALGST_BATCH_MAX_RETRIES",
		"batch.item_timeout_secs":           "SARALGST_BATCH_ITEM_TIMEOUT_SECS",
		"states.table_path":                 "SARALGST_STATES_TABLE_PATH",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Comma-separated CORS origins arrive as a single string from env.
	if len(cfg.CORS.AllowedOrigins) == 1 && strings.Contains(cfg.CORS.AllowedOrigins[0], ",") {
		cfg.CORS.AllowedOrigins = strings.Split(cfg.CORS.AllowedOrigins[0], ",")
	}

	return &cfg, nil
}
