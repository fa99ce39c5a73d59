package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"saralgst/internal/domain"
	"saralgst/internal/export"
	"saralgst/internal/extractor"
	"saralgst/internal/invoice"
	"saralgst/internal/service"
	"saralgst/internal/statecode"
)

// maxUploadBytes limits uploaded invoice documents to 20 MB.
const maxUploadBytes = 20 << 20

// InvoiceHandler handles invoice extraction and validation endpoints.
type InvoiceHandler struct {
	pipeline *service.Pipeline
	batch    *service.BatchProcessor
	states   *statecode.Registry
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(pipeline *service.Pipeline, batch *service.BatchProcessor, states *statecode.Registry) *InvoiceHandler {
	return &InvoiceHandler{pipeline: pipeline, batch: batch, states: states}
}

// Extract handles POST /api/v1/invoices/extract
//
// Accepts either a multipart "file" upload (pdf, jpg, png) or a JSON
// body {"text": "..."} carrying pre-OCRed invoice text. Returns the
// structured invoice record without validating it.
func (h *InvoiceHandler) Extract(c *gin.Context) {
	doc, err := h.readDocument(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	data, err := h.pipeline.Extract(c.Request.Context(), doc)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, data)
}

// Validate handles POST /api/v1/invoices/validate
//
// Runs the rule engine over a caller-supplied invoice record. No
// extraction happens; this is the pure deterministic path.
func (h *InvoiceHandler) Validate(c *gin.Context) {
	var record invoice.ExtractedInvoiceData
	if err := c.ShouldBindJSON(&record); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "body must be a JSON invoice record")
		return
	}

	result := h.pipeline.Validate(&record)
	RespondOK(c, result)
}

// Process handles POST /api/v1/invoices/process
//
// Extracts a structured record from the uploaded document or text and
// validates it in one pass.
func (h *InvoiceHandler) Process(c *gin.Context) {
	doc, err := h.readDocument(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	var processed *service.ProcessedInvoice
	if doc.Text != "" {
		processed, err = h.pipeline.ProcessText(c.Request.Context(), doc.Text)
	} else {
		processed, err = h.pipeline.ProcessImage(c.Request.Context(), doc.Image, doc.ContentType)
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, processed)
}

// Batch handles POST /api/v1/invoices/batch
//
// Takes a JSON array of {"id", "text"} items, each carrying pre-OCRed
// invoice text, and processes them through the bounded-concurrency
// batch runner. Per-item outcomes are returned in input order; one
// item failing does not fail the batch.
func (h *InvoiceHandler) Batch(c *gin.Context) {
	var req []struct {
		ID   string `json:"id"`
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req) == 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "body must be a non-empty JSON array of {id, text} items")
		return
	}

	items := make([]service.BatchItem, len(req))
	for i, item := range req {
		if strings.TrimSpace(item.Text) == "" {
			RespondError(c, http.StatusBadRequest, "EMPTY_DOCUMENT", "item "+item.ID+" carries no text")
			return
		}
		items[i] = service.BatchItem{
			ID:  item.ID,
			Doc: extractor.Document{Text: item.Text},
		}
	}

	results := h.batch.Run(c.Request.Context(), items)

	type itemResult struct {
		ID       string                    `json:"id"`
		Invoice  *service.ProcessedInvoice `json:"invoice,omitempty"`
		Attempts int                       `json:"attempts"`
		Error    string                    `json:"error,omitempty"`
	}
	out := make([]itemResult, len(results))
	for i, r := range results {
		out[i] = itemResult{ID: r.ID, Invoice: r.Invoice, Attempts: r.Attempts}
		if r.Err != nil {
			_, _, out[i].Error = MapDomainError(r.Err)
		}
	}

	RespondOK(c, out)
}

// Export handles POST /api/v1/invoices/export
//
// Takes a JSON array of invoice records, validates each, and streams a
// purchase register in the requested format (?format=csv|xlsx,
// default csv).
func (h *InvoiceHandler) Export(c *gin.Context) {
	var records []invoice.ExtractedInvoiceData
	if err := c.ShouldBindJSON(&records); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "body must be a JSON array of invoice records")
		return
	}

	processed := make([]*service.ProcessedInvoice, 0, len(records))
	for i := range records {
		rec := &records[i]
		processed = append(processed, &service.ProcessedInvoice{
			Data:       rec,
			Validation: h.pipeline.Validate(rec),
		})
	}

	format := c.DefaultQuery("format", "csv")
	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", `attachment; filename="purchase_register.csv"`)
		if _, err := c.Writer.Write(export.BOM); err != nil {
			HandleError(c, err)
			return
		}
		w := export.NewCSVWriter(c.Writer)
		if err := w.WriteHeader(); err != nil {
			HandleError(c, err)
			return
		}
		if err := w.WriteInvoices(processed); err != nil {
			HandleError(c, err)
			return
		}
		if err := w.Flush(); err != nil {
			HandleError(c, err)
		}
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="purchase_register.xlsx"`)
		if err := export.WriteXLSX(c.Writer, processed); err != nil {
			HandleError(c, err)
		}
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "format must be csv or xlsx")
	}
}

// States handles GET /api/v1/states
//
// Returns the GST state code table used by the validator, keyed by
// two-digit code.
func (h *InvoiceHandler) States(c *gin.Context) {
	codes := h.states.Codes()
	table := make(map[string]string, len(codes))
	for _, code := range codes {
		name, _ := h.states.Name(code)
		table[code] = name
	}
	RespondOK(c, table)
}

// readDocument builds an extraction document from the request: a
// multipart "file" for binary uploads, or a JSON {"text": ...} body.
func (h *InvoiceHandler) readDocument(c *gin.Context) (extractor.Document, error) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return h.readUpload(c)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return extractor.Document{}, domain.ErrEmptyDocument
	}
	return extractor.Document{Text: req.Text}, nil
}

func (h *InvoiceHandler) readUpload(c *gin.Context) (extractor.Document, error) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		return extractor.Document{}, domain.ErrEmptyDocument
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxUploadBytes {
		return extractor.Document{}, domain.ErrFileTooLarge
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return extractor.Document{}, domain.ErrUnsupportedFileType
	}
	mimeType := domain.AllowedFileTypes[fileType]

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return extractor.Document{}, err
	}
	if len(data) > maxUploadBytes {
		return extractor.Document{}, domain.ErrFileTooLarge
	}
	if len(data) == 0 {
		return extractor.Document{}, domain.ErrEmptyDocument
	}

	return extractor.Document{Image: data, ContentType: mimeType}, nil
}
