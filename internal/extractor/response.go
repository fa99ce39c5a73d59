package extractor

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"saralgst/internal/invoice"
)

//go:embed record_schema.json
var recordSchema []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("record_schema.json", bytes.NewReader(recordSchema)); err != nil {
			schemaErr = fmt.Errorf("add schema: %w", err)
			return
		}
		schema, schemaErr = compiler.Compile("record_schema.json")
	})
	return schema, schemaErr
}

// StripCodeFence removes triple-backtick fencing (with or without a
// language tag) that generative models often wrap JSON output in.
func StripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop a language tag like "json" on the opening fence, whether or
	// not the payload starts on the same line.
	s = strings.TrimPrefix(s, "json")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(s[:idx])
		if firstLine == "" || !strings.ContainsAny(firstLine, "{[") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// DecodeResponse turns raw model output text into a validated invoice
// record: strip fencing, parse as JSON, check the structural contract,
// then unmarshal. Each failure mode is reported distinctly so callers
// can tell a garbled response from a mis-shaped one.
func DecodeResponse(provider, text string) (*invoice.ExtractedInvoiceData, error) {
	cleaned := StripCodeFence(text)

	var probe any
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &ResponseError{
			Provider: provider,
			Kind:     KindUnparsable,
			Raw:      truncate(cleaned, 500),
			Err:      fmt.Errorf("response is not valid JSON: %w", err),
		}
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compiling record schema: %w", err)
	}
	if err := sch.Validate(probe); err != nil {
		return nil, &ResponseError{
			Provider: provider,
			Kind:     KindBadShape,
			Raw:      truncate(cleaned, 500),
			Err:      fmt.Errorf("response does not match invoice record shape: %w", err),
		}
	}

	var data invoice.ExtractedInvoiceData
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, &ResponseError{
			Provider: provider,
			Kind:     KindBadShape,
			Raw:      truncate(cleaned, 500),
			Err:      fmt.Errorf("unmarshaling invoice record: %w", err),
		}
	}
	return &data, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
