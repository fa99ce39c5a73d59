// Package invoice defines the structured GST invoice record produced by
// the extractor and the validation findings produced by the rule engine.
package invoice

import "strings"

// ExtractedInvoiceData is the canonical structured invoice record. It is
// a transient, per-invoice value object: created fresh on each
// extraction or validation call, no identity beyond the invoice it
// describes.
type ExtractedInvoiceData struct {
	SupplierName  string `json:"supplier_name"`
	SupplierGSTIN string `json:"supplier_gstin"`
	BuyerGSTIN    string `json:"buyer_gstin"`
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`
	PlaceOfSupply string `json:"place_of_supply"`
	InvoiceType   string `json:"invoice_type"`
	HSNOrSAC      string `json:"hsn_or_sac"`
	Description   string `json:"description"`
	Quantity      string `json:"quantity"`
	Unit          string `json:"unit"`

	TaxableValue      Money `json:"taxable_value"`
	CGST              Money `json:"cgst"`
	SGST              Money `json:"sgst"`
	IGST              Money `json:"igst"`
	Cess              Money `json:"cess"`
	TotalInvoiceValue Money `json:"total_invoice_value"`

	IsReverseCharge bool `json:"is_reverse_charge"`
	IsITCEligible   bool `json:"is_itc_eligible"`

	Confidence Confidence `json:"confidence"`
}

// Confidence holds the extractor's self-reported certainty, per field
// group, each in [0,1].
type Confidence struct {
	SupplierGSTIN float64 `json:"supplier_gstin"`
	InvoiceNumber float64 `json:"invoice_number"`
	TaxValues     float64 `json:"tax_values"`
}

// InvoiceType is an enumerated invoice classification tag.
type InvoiceType string

const (
	TypeB2B    InvoiceType = "B2B"
	TypeB2C    InvoiceType = "B2C"
	TypeB2CL   InvoiceType = "B2CL"
	TypeEXPWP  InvoiceType = "EXPWP"
	TypeEXPWOP InvoiceType = "EXPWOP"
	TypeSEZ    InvoiceType = "SEZ"
	TypeSEZWP  InvoiceType = "SEZWP"
	TypeSEZWOP InvoiceType = "SEZWOP"
	TypeDEXP   InvoiceType = "DEXP"
	TypeImport InvoiceType = "Import"
	TypeRCM    InvoiceType = "RCM"
)

// ValidInvoiceTypes lists all recognized invoice type tags in display
// order.
var ValidInvoiceTypes = []InvoiceType{
	TypeB2B, TypeB2C, TypeB2CL, TypeEXPWP, TypeEXPWOP,
	TypeSEZ, TypeSEZWP, TypeSEZWOP, TypeDEXP, TypeImport, TypeRCM,
}

// IsValidInvoiceType reports whether s case-insensitively matches a
// recognized invoice type.
func IsValidInvoiceType(s string) bool {
	for _, t := range ValidInvoiceTypes {
		if strings.EqualFold(s, string(t)) {
			return true
		}
	}
	return false
}
