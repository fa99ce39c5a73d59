package extractor

import (
	"fmt"

	"saralgst/internal/config"
)

// ProviderFactory creates an Extractor from a provider config.
type ProviderFactory func(cfg *config.ProviderConfig) Extractor

// registry of provider factories, populated via RegisterProvider at
// wire-up time.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an extraction provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewFromConfig creates an Extractor from a provider config using the
// registered factory.
func NewFromConfig(cfg *config.ProviderConfig) (Extractor, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown extraction provider: %s", cfg.Provider)
	}
	return factory(cfg), nil
}
