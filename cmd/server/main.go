package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"saralgst/internal/config"
	"saralgst/internal/extractor"
	"saralgst/internal/extractor/claude"
	"saralgst/internal/extractor/gemini"
	"saralgst/internal/handler"
	"saralgst/internal/router"
	"saralgst/internal/service"
	"saralgst/internal/statecode"
	"saralgst/internal/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// State code table: embedded authority table unless an amended
	// file is configured.
	states, err := loadStates(&cfg.States)
	if err != nil {
		return fmt.Errorf("failed to load state code table: %w", err)
	}

	// Register extraction providers
	extractor.RegisterProvider("gemini", func(pc *config.ProviderConfig) extractor.Extractor {
		return gemini.New(pc)
	})
	extractor.RegisterProvider("claude", func(pc *config.ProviderConfig) extractor.Extractor {
		return claude.New(pc)
	})

	ext, chain, err := buildExtractor(&cfg.Extractor)
	if err != nil {
		return fmt.Errorf("failed to build extractor: %w", err)
	}
	if ext == nil {
		log.Printf("No extraction provider configured; running validate-only")
	} else {
		log.Printf("Extraction providers: %s", chain)
	}

	val := validator.New(states)
	pipeline := service.NewPipeline(ext, val)
	batch := service.NewBatchProcessor(pipeline, service.BatchConfig{
		Concurrency: cfg.Batch.Concurrency,
		MaxRetries:  cfg.Batch.MaxRetries,
		ItemTimeout: time.Duration(cfg.Batch.ItemTimeoutSec) * time.Second,
	})

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(pipeline, batch, states)
	healthH := handler.NewHealthHandler(states, chain)

	// Setup router
	r := router.Setup(invoiceH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func loadStates(cfg *config.StatesConfig) (*statecode.Registry, error) {
	if cfg.TablePath != "" {
		return statecode.LoadFile(cfg.TablePath)
	}
	return statecode.Default(), nil
}

// buildExtractor assembles the provider chain from config. Returns a
// nil Extractor when no provider has an API key, which leaves the
// service in validate-only mode.
func buildExtractor(cfg *config.ExtractorConfig) (extractor.Extractor, string, error) {
	var chain []extractor.Extractor
	var names []string

	if cfg.Primary.APIKey != "" {
		ext, err := extractor.NewFromConfig(&cfg.Primary)
		if err != nil {
			return nil, "", err
		}
		chain = append(chain, ext)
		names = append(names, cfg.Primary.Provider)
	}
	if sec := cfg.SecondaryConfig(); sec != nil && sec.APIKey != "" {
		ext, err := extractor.NewFromConfig(sec)
		if err != nil {
			return nil, "", err
		}
		chain = append(chain, ext)
		names = append(names, sec.Provider)
	}

	switch len(chain) {
	case 0:
		return nil, "", nil
	case 1:
		return chain[0], names[0], nil
	default:
		return extractor.NewFallback(chain, names), strings.Join(names, ","), nil
	}
}
