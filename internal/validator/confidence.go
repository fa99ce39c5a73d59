package validator

import (
	"fmt"

	"saralgst/internal/invoice"
)

// checkConfidence rejects field groups the extractor itself was unsure
// about. A structurally well-formed value with low extraction
// confidence still goes to manual review; format validity and
// confidence validity are independent, additive checks.
func (v *Validator) checkConfidence(data *invoice.ExtractedInvoiceData, f *findings) {
	if data.Confidence.SupplierGSTIN < v.minConfidence {
		f.addError(invoice.ValidationError{
			Field:         "supplier_gstin",
			IssueType:     invoice.IssueUnreadable,
			DetectedValue: invoice.StringPtr(data.SupplierGSTIN),
			Message: fmt.Sprintf("Low confidence (%.0f%%) in supplier GSTIN extraction",
				data.Confidence.SupplierGSTIN*100),
			ConfidenceScore: invoice.Float64Ptr(data.Confidence.SupplierGSTIN),
		})
	}

	if data.Confidence.InvoiceNumber < v.minConfidence {
		f.addError(invoice.ValidationError{
			Field:         "invoice_number",
			IssueType:     invoice.IssueUnreadable,
			DetectedValue: invoice.StringPtr(data.InvoiceNumber),
			Message: fmt.Sprintf("Low confidence (%.0f%%) in invoice number extraction",
				data.Confidence.InvoiceNumber*100),
			ConfidenceScore: invoice.Float64Ptr(data.Confidence.InvoiceNumber),
		})
	}

	if data.Confidence.TaxValues < v.minConfidence {
		f.addError(invoice.ValidationError{
			Field:     "tax_values",
			IssueType: invoice.IssueUnreadable,
			DetectedValue: invoice.StringPtr(fmt.Sprintf(
				"CGST: %s, SGST: %s, IGST: %s", data.CGST, data.SGST, data.IGST)),
			Message: fmt.Sprintf("Low confidence (%.0f%%) in tax value extraction",
				data.Confidence.TaxValues*100),
			ConfidenceScore: invoice.Float64Ptr(data.Confidence.TaxValues),
		})
	}
}
