// Package validator implements the deterministic admissibility checks
// run on every extracted invoice before it may enter the purchase
// register. The engine is a pure function of the invoice record, the
// injected state-code registry, and the injected clock: no I/O, no
// randomness, same input always yields the same result.
package validator

import (
	"time"

	"saralgst/internal/invoice"
	"saralgst/internal/statecode"
)

// MinConfidence is the threshold below which an extracted field group
// is treated as unreadable and routed to manual review.
const MinConfidence = 0.5

// Validator runs all invoice checks. Construct once and share; it is
// stateless apart from its read-only dependencies.
type Validator struct {
	states        *statecode.Registry
	now           func() time.Time
	minConfidence float64
}

// Option customizes a Validator.
type Option func(*Validator)

// WithClock replaces the wall clock used by date checks. Tests use this
// to pin "today".
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// WithMinConfidence overrides the confidence threshold.
func WithMinConfidence(min float64) Option {
	return func(v *Validator) { v.minConfidence = min }
}

// New creates a Validator backed by the given state-code registry.
func New(states *statecode.Registry, opts ...Option) *Validator {
	v := &Validator{
		states:        states,
		now:           time.Now,
		minConfidence: MinConfidence,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// findings accumulates errors and warnings across checks.
type findings struct {
	errors   []invoice.ValidationError
	warnings []invoice.ValidationWarning
}

func (f *findings) addError(e invoice.ValidationError) {
	f.errors = append(f.errors, e)
}

func (f *findings) addWarning(w invoice.ValidationWarning) {
	f.warnings = append(f.warnings, w)
}

// Validate runs every check against the record and returns the
// combined result. All checks run unconditionally; an invoice can fail
// several at once. Bad content never panics or returns an error; it
// becomes findings.
func (v *Validator) Validate(data *invoice.ExtractedInvoiceData) invoice.ValidationResult {
	var f findings

	v.checkGSTIN(data.SupplierGSTIN, "supplier_gstin", invoice.Float64Ptr(data.Confidence.SupplierGSTIN), &f)
	v.checkGSTIN(data.BuyerGSTIN, "buyer_gstin", nil, &f)
	v.checkMandatoryFields(data, &f)
	v.checkTaxArithmetic(data, &f)
	v.checkDate(data.InvoiceDate, "invoice_date", &f)
	v.checkInvoiceType(data.InvoiceType, &f)
	v.checkHSNOrSAC(data.HSNOrSAC, &f)
	v.checkPlaceOfSupply(data, &f)
	v.checkConfidence(data, &f)

	return invoice.NewValidationResult(f.errors, f.warnings)
}
