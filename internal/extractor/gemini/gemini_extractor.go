package gemini

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

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Extractor implements extractor.Extractor using Google's Gemini API.
// Handles both raw OCR text and inline image/PDF payloads.
type Extractor struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// New creates a Gemini-based extractor from a provider config.
func New(cfg *config.ProviderConfig) *Extractor {
	return newExtractor(cfg, "")
}

// NewWithEndpoint creates an extractor pointing at a custom API
// endpoint (for testing).
func NewWithEndpoint(cfg *config.ProviderConfig, endpoint string) *Extractor {
	return newExtractor(cfg, endpoint)
}

func newExtractor(cfg *config.ProviderConfig, endpoint string) *Extractor {
	model := cfg.DefaultModel
	if model == "" {
		model = "gemini-2.0-flash"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
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

	parts, err := buildParts(doc)
	if err != nil {
		return nil, err
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": parts,
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.1,
			"maxOutputTokens": 2048,
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
	req.Header.Set("x-goog-api-key", e.apiKey)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &extractor.RequestError{Provider: "gemini", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &extractor.RequestError{Provider: "gemini", Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		baseErr := fmt.Errorf("gemini API error: %s", string(respBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := extractor.ParseRetryAfterHeader(resp.Header.Get("Retry-After"))
			return nil, extractor.NewRateLimitError("gemini", baseErr, retryAfter)
		}
		return nil, &extractor.RequestError{Provider: "gemini", StatusCode: resp.StatusCode, Err: baseErr}
	}

	return parseResponse(respBody)
}

// buildParts assembles the request parts for either document flavor.
// Image payloads lead with inline_data so the prompt references "this
// document"; text payloads embed the OCR text in the prompt itself.
func buildParts(doc extractor.Document) ([]map[string]interface{}, error) {
	if doc.Text != "" {
		return []map[string]interface{}{
			{"text": extractor.BuildTextPrompt(doc.Text)},
		}, nil
	}

	encoded := base64.StdEncoding.EncodeToString(doc.Image)
	return []map[string]interface{}{
		{
			"inline_data": map[string]interface{}{
				"mime_type": doc.ContentType,
				"data":      encoded,
			},
		},
		{"text": extractor.BuildImagePrompt()},
	}, nil
}

// geminiResponse models the Gemini API response.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func parseResponse(body []byte) (*invoice.ExtractedInvoiceData, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &extractor.RequestError{Provider: "gemini", Err: fmt.Errorf("unmarshaling response envelope: %w", err)}
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, &extractor.RequestError{Provider: "gemini", Err: fmt.Errorf("empty response from API")}
	}

	return extractor.DecodeResponse("gemini", resp.Candidates[0].Content.Parts[0].Text)
}
