package validator

import (
	"fmt"
	"strings"

	"saralgst/internal/invoice"
)

// checkInvoiceType verifies the invoice type against the recognized
// enumeration, case-insensitively.
func (v *Validator) checkInvoiceType(invoiceType string, f *findings) {
	if strings.TrimSpace(invoiceType) == "" {
		f.addError(invoice.ValidationError{
			Field:         "invoice_type",
			IssueType:     invoice.IssueMissing,
			DetectedValue: nil,
			Message:       "invoice_type is required",
		})
		return
	}

	if !invoice.IsValidInvoiceType(invoiceType) {
		valid := make([]string, len(invoice.ValidInvoiceTypes))
		for i, t := range invoice.ValidInvoiceTypes {
			valid[i] = string(t)
		}
		list := strings.Join(valid, ", ")
		f.addError(invoice.ValidationError{
			Field:         "invoice_type",
			IssueType:     invoice.IssueInvalidFormat,
			DetectedValue: invoice.StringPtr(invoiceType),
			ExpectedValue: list,
			Message:       fmt.Sprintf("invoice_type must be one of: %s", list),
		})
	}
}
