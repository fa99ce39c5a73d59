package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"saralgst/internal/domain"
	"saralgst/internal/extractor"
	"saralgst/internal/invoice"
	"saralgst/internal/validator"
)

// ProcessedInvoice bundles one invoice's extraction output with its
// validation verdict.
type ProcessedInvoice struct {
	Data       *invoice.ExtractedInvoiceData `json:"data"`
	Validation invoice.ValidationResult      `json:"validation"`
}

// Pipeline runs extraction followed by validation for single invoices.
// The two stages stay independently usable: Validate accepts records
// that never went through extraction (manual entry, tests).
type Pipeline struct {
	extractor extractor.Extractor
	validator *validator.Validator
}

// NewPipeline creates a Pipeline. The extractor may be nil for
// validate-only deployments.
func NewPipeline(ext extractor.Extractor, val *validator.Validator) *Pipeline {
	return &Pipeline{extractor: ext, validator: val}
}

// ProcessText extracts a record from raw OCR text and validates it.
func (p *Pipeline) ProcessText(ctx context.Context, ocrText string) (*ProcessedInvoice, error) {
	return p.process(ctx, extractor.Document{Text: ocrText})
}

// ProcessImage extracts a record from an image/PDF payload and
// validates it.
func (p *Pipeline) ProcessImage(ctx context.Context, payload []byte, contentType string) (*ProcessedInvoice, error) {
	return p.process(ctx, extractor.Document{Image: payload, ContentType: contentType})
}

func (p *Pipeline) process(ctx context.Context, doc extractor.Document) (*ProcessedInvoice, error) {
	if p.extractor == nil {
		return nil, domain.ErrExtractorOffline
	}

	data, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		if errors.Is(err, extractor.ErrNotConfigured) {
			return nil, domain.ErrExtractorOffline
		}
		return nil, fmt.Errorf("extracting invoice: %w", err)
	}

	result := p.validator.Validate(data)
	log.Printf("service.Pipeline: invoice %q validated: valid=%t errors=%d warnings=%d",
		data.InvoiceNumber, result.IsValid, len(result.Errors), len(result.Warnings))

	return &ProcessedInvoice{Data: data, Validation: result}, nil
}

// Extract runs extraction only, without validating the result.
func (p *Pipeline) Extract(ctx context.Context, doc extractor.Document) (*invoice.ExtractedInvoiceData, error) {
	if p.extractor == nil {
		return nil, domain.ErrExtractorOffline
	}

	data, err := p.extractor.Extract(ctx, doc)
	if err != nil {
		if errors.Is(err, extractor.ErrNotConfigured) {
			return nil, domain.ErrExtractorOffline
		}
		return nil, fmt.Errorf("extracting invoice: %w", err)
	}
	return data, nil
}

// Validate runs the rule engine on an already-structured record.
func (p *Pipeline) Validate(data *invoice.ExtractedInvoiceData) invoice.ValidationResult {
	return p.validator.Validate(data)
}
