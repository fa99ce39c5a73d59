package validator

import (
	"fmt"
	"math"

	"saralgst/internal/invoice"
)

// totalTolerance is the permitted absolute deviation between the stated
// and computed invoice totals: ₹1, to absorb line-level rounding. With
// amounts in paise this is an exact integer comparison.
const totalTolerance = invoice.Money(1 * invoice.PaisePerRupee)

// rateTolerance is how far (in percentage points) an effective tax rate
// may sit from a notified GST rate before it is flagged.
const rateTolerance = 0.5

// standardRates are the notified GST rates, in percent. Compound
// non-standard rates exist in practice, which is why rate deviation is
// only a warning.
var standardRates = []float64{0, 0.25, 3, 5, 6, 9, 12, 14, 18, 28}

// checkTaxArithmetic verifies the monetary identities on the record:
// the grand total, the mutual exclusivity of intra- and inter-state
// taxes, the CGST/SGST split, and rate plausibility.
func (v *Validator) checkTaxArithmetic(data *invoice.ExtractedInvoiceData, f *findings) {
	calculated := data.TaxableValue + data.CGST + data.SGST + data.IGST + data.Cess

	if diff := (calculated - data.TotalInvoiceValue).Abs(); diff > totalTolerance {
		f.addError(invoice.ValidationError{
			Field:         "total_invoice_value",
			IssueType:     invoice.IssueMismatch,
			DetectedValue: invoice.StringPtr(data.TotalInvoiceValue.String()),
			ExpectedValue: calculated.String(),
			Message: fmt.Sprintf("Total invoice value mismatch. Expected: ₹%s, Found: ₹%s",
				calculated, data.TotalInvoiceValue),
			ConfidenceScore: invoice.Float64Ptr(data.Confidence.TaxValues),
		})
	}

	taxDetected := fmt.Sprintf("CGST: %s, SGST: %s, IGST: %s", data.CGST, data.SGST, data.IGST)

	// CGST+SGST (intra-state) and IGST (inter-state) are mutually
	// exclusive on a single supply.
	if data.CGST > 0 && data.SGST > 0 && data.IGST > 0 {
		f.addError(invoice.ValidationError{
			Field:           "tax_values",
			IssueType:       invoice.IssueMismatch,
			DetectedValue:   invoice.StringPtr(taxDetected),
			Message:         "Both intra-state (CGST+SGST) and inter-state (IGST) taxes cannot be applied together",
			ConfidenceScore: invoice.Float64Ptr(data.Confidence.TaxValues),
		})
	}

	if data.CGST > 0 && data.SGST > 0 && data.CGST != data.SGST {
		f.addWarning(invoice.ValidationWarning{
			Field:         "tax_values",
			Message:       fmt.Sprintf("CGST (₹%s) and SGST (₹%s) should typically be equal", data.CGST, data.SGST),
			DetectedValue: invoice.StringPtr(fmt.Sprintf("CGST: %s, SGST: %s", data.CGST, data.SGST)),
		})
	}

	totalTax := data.CGST + data.SGST + data.IGST
	if data.TaxableValue > 0 && totalTax > 0 {
		rate := totalTax.Rupees() / data.TaxableValue.Rupees() * 100
		if !isStandardRate(rate) {
			f.addWarning(invoice.ValidationWarning{
				Field:         "tax_values",
				Message:       fmt.Sprintf("Unusual tax rate: %.2f%%. Common GST rates are 5%%, 12%%, 18%%, 28%%", rate),
				DetectedValue: invoice.StringPtr(fmt.Sprintf("%.2f%%", rate)),
			})
		}
	}
}

func isStandardRate(rate float64) bool {
	for _, r := range standardRates {
		if math.Abs(rate-r) < rateTolerance {
			return true
		}
	}
	return false
}
