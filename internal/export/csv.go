package export

import (
	"encoding/csv"
	"io"

	"saralgst/internal/service"
)

// CSVWriter wraps csv.Writer for exporting a purchase register as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w. Callers wanting
// Excel-friendly output should write BOM to w first.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the register header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteInvoices converts processed invoices to rows and writes them.
func (w *CSVWriter) WriteInvoices(invoices []*service.ProcessedInvoice) error {
	for _, p := range invoices {
		if err := w.csv.Write(invoiceToRow(p)); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer and reports any
// deferred write error.
func (w *CSVWriter) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
