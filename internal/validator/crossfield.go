package validator

import (
	"fmt"
	"strings"

	"saralgst/internal/invoice"
)

// checkPlaceOfSupply cross-checks transaction geography against which
// tax heads are populated. Intra-state supplies (equal GSTIN state
// prefixes) carry CGST+SGST; inter-state supplies carry IGST. Advisory
// only: the extracted GSTINs may themselves be wrong, so this is a
// plausibility signal rather than a hard rule.
func (v *Validator) checkPlaceOfSupply(data *invoice.ExtractedInvoiceData, f *findings) {
	if strings.TrimSpace(data.PlaceOfSupply) == "" {
		// Absence is reported by the mandatory-field check.
		return
	}

	supplierState := StateCodeFromGSTIN(data.SupplierGSTIN)
	buyerState := StateCodeFromGSTIN(data.BuyerGSTIN)
	if supplierState == "" || buyerState == "" {
		return
	}

	intraState := supplierState == buyerState
	hasCGSTSGST := data.CGST > 0 && data.SGST > 0
	hasIGST := data.IGST > 0

	if intraState && hasIGST && !hasCGSTSGST {
		f.addWarning(invoice.ValidationWarning{
			Field:   "tax_type",
			Message: "Intra-state transaction should have CGST+SGST, not IGST",
			DetectedValue: invoice.StringPtr(fmt.Sprintf(
				"Supplier: %s, Buyer: %s, IGST: %s", supplierState, buyerState, data.IGST)),
		})
	}

	if !intraState && hasCGSTSGST && !hasIGST {
		f.addWarning(invoice.ValidationWarning{
			Field:   "tax_type",
			Message: "Inter-state transaction should have IGST, not CGST+SGST",
			DetectedValue: invoice.StringPtr(fmt.Sprintf(
				"Supplier: %s, Buyer: %s, CGST: %s, SGST: %s",
				supplierState, buyerState, data.CGST, data.SGST)),
		})
	}
}
