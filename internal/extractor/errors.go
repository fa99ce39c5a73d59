package extractor

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrNotConfigured indicates the provider has no API key and cannot be
// called at all.
var ErrNotConfigured = errors.New("extraction provider not configured")

// RequestError indicates the call to the provider failed at the
// transport or HTTP level: we never got a usable model response.
type RequestError struct {
	Provider   string
	StatusCode int // 0 when the request never completed
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s request failed (status %d): %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// RateLimitError indicates the provider returned HTTP 429. Callers use
// RetryAfter to back off before retrying.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// NewRateLimitError creates a RateLimitError. If retryAfterSecs is 0,
// defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Provider:   provider,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Err:        err,
	}
}

// ParseRetryAfterHeader parses a Retry-After header value into seconds.
// Returns 0 if the value is empty or not a valid integer.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}

// ResponseKind distinguishes the ways a completed model response can
// still fail to yield a record.
type ResponseKind string

const (
	// KindUnparsable: the response text is not JSON even after fence
	// stripping.
	KindUnparsable ResponseKind = "unparsable"
	// KindBadShape: the response parsed as JSON but does not carry the
	// required invoice fields.
	KindBadShape ResponseKind = "bad_shape"
)

// ResponseError indicates the provider answered but the answer could
// not be accepted as an invoice record.
type ResponseError struct {
	Provider string
	Kind     ResponseKind
	Raw      string // truncated raw response text, for diagnostics
	Err      error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s returned %s response: %v", e.Provider, e.Kind, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }
