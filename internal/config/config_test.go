package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saralgst/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, "gemini", cfg.Extractor.Primary.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Extractor.Primary.DefaultModel)
	assert.Equal(t, 120, cfg.Extractor.Primary.TimeoutSecs)
	assert.Empty(t, cfg.Extractor.Primary.APIKey)
	assert.Equal(t, 5, cfg.Batch.Concurrency)
	assert.Equal(t, 2, cfg.Batch.MaxRetries)
	assert.Empty(t, cfg.States.TablePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SARALGST_SERVER_PORT", ":9090")
	t.Setenv("SARALGST_EXTRACTOR_PRIMARY_PROVIDER", "claude")
	t.Setenv("SARALGST_EXTRACTOR_PRIMARY_API_KEY", "sk-test")
	t.Setenv("SARALGST_BATCH_CONCURRENCY", "10")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "claude", cfg.Extractor.Primary.Provider)
	assert.Equal(t, "sk-test", cfg.Extractor.Primary.APIKey)
	assert.Equal(t, 10, cfg.Batch.Concurrency)
}

func TestLoad_CORSOriginsSplit(t *testing.T) {
	t.Setenv("SARALGST_CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestExtractorConfig_SecondaryConfig(t *testing.T) {
	cfg := config.ExtractorConfig{
		Primary: config.ProviderConfig{Provider: "gemini", APIKey: "k1"},
	}
	assert.Nil(t, cfg.SecondaryConfig())

	cfg.Secondary = config.ProviderConfig{Provider: "claude", APIKey: "k2"}
	secondary := cfg.SecondaryConfig()
	require.NotNil(t, secondary)
	assert.Equal(t, "claude", secondary.Provider)
}
