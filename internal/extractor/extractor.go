// Package extractor defines the structured-extraction port: turning a
// raw invoice document (OCR text or an image/PDF payload) into an
// ExtractedInvoiceData with per-field confidences, by delegating to an
// external generative model behind a narrow interface. Implementations
// live in the provider subpackages; the validator never depends on any
// of this.
package extractor

import (
	"context"
	"fmt"

	"saralgst/internal/invoice"
)

// Allowed payload content types for image extraction, matching the
// upload surface.
var allowedContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// Document is one invoice source. Exactly one of Text or Image is set;
// ContentType accompanies Image.
type Document struct {
	Text        string
	Image       []byte
	ContentType string
}

// Validate checks that the document is well-formed before it is handed
// to a provider.
func (d Document) Validate() error {
	hasText := d.Text != ""
	hasImage := len(d.Image) > 0
	switch {
	case hasText && hasImage:
		return fmt.Errorf("document carries both text and image payloads")
	case !hasText && !hasImage:
		return fmt.Errorf("document carries no payload")
	case hasImage && !allowedContentTypes[d.ContentType]:
		return fmt.Errorf("unsupported content type for extraction: %s", d.ContentType)
	}
	return nil
}

// Extractor produces a structured invoice record from one document.
// One blocking external call per invocation, no internal retries, no
// side effects beyond the call; retry and timeout policy belong to the
// caller.
type Extractor interface {
	Extract(ctx context.Context, doc Document) (*invoice.ExtractedInvoiceData, error)
}
