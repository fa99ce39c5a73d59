package validator

import (
	"fmt"
	"strings"

	"saralgst/internal/invoice"
)

// mandatoryField describes one entry of the presence check. Critical
// fields block GSTR-2B filing when absent; advisory fields get softer
// message wording but are still emitted as missing errors, matching
// observed filing-desk behavior.
type mandatoryField struct {
	field    string
	label    string
	critical bool
	value    func(*invoice.ExtractedInvoiceData) (detected *string, present bool)
	conf     func(*invoice.ExtractedInvoiceData) *float64
}

func textField(get func(*invoice.ExtractedInvoiceData) string) func(*invoice.ExtractedInvoiceData) (*string, bool) {
	return func(d *invoice.ExtractedInvoiceData) (*string, bool) {
		s := get(d)
		if strings.TrimSpace(s) == "" {
			return nil, false
		}
		return invoice.StringPtr(s), true
	}
}

var mandatoryFields = []mandatoryField{
	{
		field: "supplier_name", label: "Supplier Name", critical: true,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.SupplierName }),
	},
	{
		field: "supplier_gstin", label: "Supplier GSTIN", critical: true,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.SupplierGSTIN }),
	},
	{
		field: "invoice_number", label: "Invoice Number", critical: true,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.InvoiceNumber }),
		conf:  func(d *invoice.ExtractedInvoiceData) *float64 { return invoice.Float64Ptr(d.Confidence.InvoiceNumber) },
	},
	{
		field: "invoice_date", label: "Invoice Date", critical: true,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.InvoiceDate }),
	},
	{
		field: "invoice_type", label: "Invoice Type (B2B/Import/RCM/SEZ)", critical: true,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.InvoiceType }),
	},
	{
		field: "place_of_supply", label: "Place of Supply", critical: true,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.PlaceOfSupply }),
	},
	{
		// Zero is treated as missing for taxable_value only: a
		// purchase invoice with no taxable amount cannot be filed.
		field: "taxable_value", label: "Taxable Value", critical: true,
		value: func(d *invoice.ExtractedInvoiceData) (*string, bool) {
			if d.TaxableValue.IsZero() {
				return invoice.StringPtr(d.TaxableValue.String()), false
			}
			return invoice.StringPtr(d.TaxableValue.String()), true
		},
	},
	{
		field: "hsn_or_sac", label: "HSN/SAC Code", critical: true,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.HSNOrSAC }),
	},
	{
		field: "description", label: "Description of Goods/Services", critical: false,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.Description }),
	},
	{
		field: "quantity", label: "Quantity", critical: false,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.Quantity }),
	},
	{
		field: "unit", label: "Unit of Measure", critical: false,
		value: textField(func(d *invoice.ExtractedInvoiceData) string { return d.Unit }),
	},
}

// checkMandatoryFields emits one missing error per absent field.
func (v *Validator) checkMandatoryFields(data *invoice.ExtractedInvoiceData, f *findings) {
	for _, mf := range mandatoryFields {
		detected, present := mf.value(data)
		if present {
			continue
		}

		msg := fmt.Sprintf("%s is recommended for complete invoice records", mf.label)
		if mf.critical {
			msg = fmt.Sprintf("%s is required for GST filing (GSTR-2B compliance)", mf.label)
		}

		var conf *float64
		if mf.conf != nil {
			conf = mf.conf(data)
		}

		f.addError(invoice.ValidationError{
			Field:           mf.field,
			IssueType:       invoice.IssueMissing,
			DetectedValue:   detected,
			Message:         msg,
			ConfidenceScore: conf,
		})
	}
}
