// Package export writes validated invoices out as a purchase register,
// the tabular form accountants reconcile against GSTR-2B.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"saralgst/internal/service"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the register header row.
var columns = []string{
	"Invoice Number",
	"Invoice Date",
	"Invoice Type",
	"Supplier Name",
	"Supplier GSTIN",
	"Buyer GSTIN",
	"Place of Supply",
	"HSN/SAC",
	"Description",
	"Quantity",
	"Unit",
	"Taxable Value",
	"CGST",
	"SGST",
	"IGST",
	"Cess",
	"Total",
	"Reverse Charge",
	"ITC Eligible",
	"Validation Status",
	"Errors",
	"Warnings",
}

// invoiceToRow flattens one processed invoice into a register row.
func invoiceToRow(p *service.ProcessedInvoice) []string {
	d := p.Data
	status := "admissible"
	if !p.Validation.IsValid {
		status = "blocked"
	}

	var errMsgs []string
	for _, e := range p.Validation.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	var warnMsgs []string
	for _, w := range p.Validation.Warnings {
		warnMsgs = append(warnMsgs, fmt.Sprintf("%s: %s", w.Field, w.Message))
	}

	return []string{
		d.InvoiceNumber,
		d.InvoiceDate,
		d.InvoiceType,
		d.SupplierName,
		d.SupplierGSTIN,
		d.BuyerGSTIN,
		d.PlaceOfSupply,
		d.HSNOrSAC,
		d.Description,
		d.Quantity,
		d.Unit,
		d.TaxableValue.String(),
		d.CGST.String(),
		d.SGST.String(),
		d.IGST.String(),
		d.Cess.String(),
		d.TotalInvoiceValue.String(),
		strconv.FormatBool(d.IsReverseCharge),
		strconv.FormatBool(d.IsITCEligible),
		status,
		strings.Join(errMsgs, "; "),
		strings.Join(warnMsgs, "; "),
	}
}
