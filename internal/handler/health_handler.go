package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"saralgst/internal/statecode"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	states    *statecode.Registry
	extractor string
}

// NewHealthHandler creates a new HealthHandler. extractorName is the
// configured provider chain label, or "" when extraction is disabled.
func NewHealthHandler(states *statecode.Registry, extractorName string) *HealthHandler {
	return &HealthHandler{states: states, extractor: extractorName}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
//
// The service is ready when the state code table loaded; extraction is
// reported but does not gate readiness since validation works without
// it.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.states == nil || h.states.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "state code table not loaded"})
		return
	}

	extractorStatus := "disabled"
	if h.extractor != "" {
		extractorStatus = h.extractor
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "extractor": extractorStatus})
}
