package claude

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"saralgst/internal/config"
	"saralgst/internal/extractor"
	"saralgst/internal/invoice"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
)

// Extractor implements extractor.Extractor using the Anthropic
// Messages API.
type Extractor struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// New creates a Claude-based extractor from a provider config.
func New(cfg *config.ProviderConfig) *Extractor {
	return newExtractor(cfg, apiURL)
}

// NewWithEndpoint creates an extractor pointing at a custom API
// endpoint (for testing).
func NewWithEndpoint(cfg *config.ProviderConfig, endpoint string) *Extractor {
	return newExtractor(cfg, endpoint)
}

func newExtractor(cfg *config.ProviderConfig, endpoint string) *Extractor {
	model := cfg.DefaultModel
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Extractor{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (e *Extractor) Extract(ctx context.Context, doc extractor.Document) (*invoice.ExtractedInvoiceData, error) {
	if e.apiKey == "" {
		return nil, extractor.ErrNotConfigured
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	contentBlocks, err := buildContentBlocks(doc)
	if err != nil {
		return nil, fmt.Errorf("building content blocks: %w", err)
	}

	reqBody := map[string]interface{}{
		"model":      e.model,
		"max_tokens": 2048,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": contentBlocks,
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", e.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &extractor.RequestError{Provider: "claude", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &extractor.RequestError{Provider: "claude", Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("anthropic API error: %s", string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := extractor.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return nil, extractor.NewRateLimitError("claude", baseErr, retryAfter)
		}
		return nil, &extractor.RequestError{Provider: "claude", StatusCode: resp.StatusCode, Err: baseErr}
	}

	return parseResponse(respBody)
}

func buildContentBlocks(doc extractor.Document) ([]map[string]interface{}, error) {
	if doc.Text != "" {
		return []map[string]interface{}{
			{"type": "text", "text": extractor.BuildTextPrompt(doc.Text)},
		}, nil
	}

	encoded := base64.StdEncoding.EncodeToString(doc.Image)
	var blocks []map[string]interface{}

	switch doc.ContentType {
	case "application/pdf":
		blocks = append(blocks, map[string]interface{}{
			"type": "document",
			"source": map[string]interface{}{
				"type":       "base64",
				"media_type": "application/pdf",
				"data":       encoded,
			},
		})
	case "image/jpeg", "image/png":
		blocks = append(blocks, map[string]interface{}{
			"type": "image",
			"source": map[string]interface{}{
				"type":       "base64",
				"media_type": doc.ContentType,
				"data":       encoded,
			},
		})
	default:
		return nil, fmt.Errorf("unsupported content type for extraction: %s", doc.ContentType)
	}

	blocks = append(blocks, map[string]interface{}{
		"type": "text",
		"text": extractor.BuildImagePrompt(),
	})

	return blocks, nil
}

// apiResponse models the Anthropic Messages API response.
type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func parseResponse(body []byte) (*invoice.ExtractedInvoiceData, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &extractor.RequestError{Provider: "claude", Err: fmt.Errorf("unmarshaling response envelope: %w", err)}
	}

	if len(resp.Content) == 0 {
		return nil, &extractor.RequestError{Provider: "claude", Err: fmt.Errorf("empty response from API")}
	}

	if resp.StopReason == "max_tokens" {
		return nil, &extractor.RequestError{Provider: "claude", Err: fmt.Errorf("output truncated (stop_reason: max_tokens)")}
	}

	return extractor.DecodeResponse("claude", resp.Content[0].Text)
}
