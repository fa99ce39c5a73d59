package extractor_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saralgst/internal/extractor"
)

func TestRequestError_Message(t *testing.T) {
	withStatus := &extractor.RequestError{
		Provider:   "gemini",
		StatusCode: 500,
		Err:        errors.New("server error"),
	}
	assert.Equal(t, "gemini request failed (status 500): server error", withStatus.Error())

	withoutStatus := &extractor.RequestError{
		Provider: "claude",
		Err:      errors.New("connection refused"),
	}
	assert.Equal(t, "claude request failed: connection refused", withoutStatus.Error())
}

func TestRequestError_Unwrap(t *testing.T) {
	inner := errors.New("timeout")
	err := fmt.Errorf("extracting: %w", &extractor.RequestError{Provider: "gemini", Err: inner})

	var reqErr *extractor.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.ErrorIs(t, err, inner)
}

func TestNewRateLimitError_Defaults(t *testing.T) {
	err := extractor.NewRateLimitError("gemini", errors.New("429"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)

	err = extractor.NewRateLimitError("gemini", errors.New("429"), 30)
	assert.Equal(t, 30*time.Second, err.RetryAfter)

	err = extractor.NewRateLimitError("gemini", errors.New("429"), -5)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 120, extractor.ParseRetryAfterHeader("120"))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, extractor.ParseRetryAfterHeader("Wed, 21 Oct 2025 07:28:00 GMT"))
}

func TestResponseError_Message(t *testing.T) {
	err := &extractor.ResponseError{
		Provider: "claude",
		Kind:     extractor.KindUnparsable,
		Raw:      "not json",
		Err:      errors.New("response is not valid JSON"),
	}
	assert.Contains(t, err.Error(), "claude")
	assert.Contains(t, err.Error(), "unparsable")
}
