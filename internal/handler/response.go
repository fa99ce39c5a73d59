package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"saralgst/internal/domain"
	"saralgst/internal/extractor"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain and extraction errors to HTTP
// status codes and error codes. Extraction failure modes stay
// distinguishable at the boundary so callers can tell "we couldn't get
// a guess" apart from "the guess was rejected".
func MapDomainError(err error) (status int, code, msg string) {
	var rlErr *extractor.RateLimitError
	var reqErr *extractor.RequestError
	var respErr *extractor.ResponseError

	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, jpg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusBadRequest, "EMPTY_DOCUMENT", "document carries no content"
	case errors.Is(err, domain.ErrInvalidRecord):
		return http.StatusBadRequest, "INVALID_RECORD", "invoice record does not match expected format"
	case errors.Is(err, domain.ErrExtractorOffline), errors.Is(err, extractor.ErrNotConfigured):
		return http.StatusServiceUnavailable, "EXTRACTOR_OFFLINE", "no extraction provider is configured"
	case errors.As(err, &rlErr):
		return http.StatusTooManyRequests, "EXTRACTION_RATE_LIMITED", "extraction provider rate limited; retry later"
	case errors.As(err, &respErr):
		if respErr.Kind == extractor.KindUnparsable {
			return http.StatusBadGateway, "EXTRACTION_UNPARSABLE", "extraction provider returned unparsable output"
		}
		return http.StatusBadGateway, "EXTRACTION_BAD_SHAPE", "extraction provider returned malformed invoice data"
	case errors.As(err, &reqErr):
		return http.StatusBadGateway, "EXTRACTION_FAILED", "extraction provider call failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps an error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
