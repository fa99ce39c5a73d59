package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saralgst/internal/config"
	"saralgst/internal/extractor"
)

func TestNewFromConfig(t *testing.T) {
	stub := &stubExtractor{data: sampleRecord("stub")}
	extractor.RegisterProvider("stub", func(cfg *config.ProviderConfig) extractor.Extractor {
		return stub
	})

	e, err := extractor.NewFromConfig(&config.ProviderConfig{Provider: "stub", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, extractor.Extractor(stub), e)
}

func TestNewFromConfig_UnknownProvider(t *testing.T) {
	_, err := extractor.NewFromConfig(&config.ProviderConfig{Provider: "no-such-provider"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown extraction provider")
}
