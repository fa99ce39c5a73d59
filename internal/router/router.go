package router

import (
	"github.com/gin-gonic/gin"

	"saralgst/internal/handler"
	"saralgst/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	invoiceH *handler.InvoiceHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	invoices := v1.Group("/invoices")
	invoices.POST("/extract", invoiceH.Extract)
	invoices.POST("/validate", invoiceH.Validate)
	invoices.POST("/process", invoiceH.Process)
	invoices.POST("/batch", invoiceH.Batch)
	invoices.POST("/export", invoiceH.Export)

	v1.GET("/states", invoiceH.States)

	return r
}
