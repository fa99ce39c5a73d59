package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saralgst/internal/invoice"
	"saralgst/internal/validator"
)

func TestValidator_Confidence_LowSupplierGSTIN(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.Confidence.SupplierGSTIN = 0.3

	result := v.Validate(rec)

	require.False(t, result.IsValid)
	errs := errorsForField(result, "supplier_gstin")
	require.Len(t, errs, 1)
	assert.Equal(t, invoice.IssueUnreadable, errs[0].IssueType)
	assert.Equal(t, "Low confidence (30%) in supplier GSTIN extraction", errs[0].Message)
	require.NotNil(t, errs[0].ConfidenceScore)
	assert.InDelta(t, 0.3, *errs[0].ConfidenceScore, 1e-9)
}

func TestValidator_Confidence_LowInvoiceNumber(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.Confidence.InvoiceNumber = 0.1

	result := v.Validate(rec)

	require.False(t, result.IsValid)
	errs := errorsForField(result, "invoice_number")
	require.Len(t, errs, 1)
	assert.Equal(t, invoice.IssueUnreadable, errs[0].IssueType)
	require.NotNil(t, errs[0].DetectedValue)
	assert.Equal(t, "INV-2024-0042", *errs[0].DetectedValue)
}

func TestValidator_Confidence_LowTaxValues(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.Confidence.TaxValues = 0.45

	result := v.Validate(rec)

	require.False(t, result.IsValid)
	errs := errorsForField(result, "tax_values")
	require.Len(t, errs, 1)
	assert.Equal(t, invoice.IssueUnreadable, errs[0].IssueType)
	assert.Contains(t, *errs[0].DetectedValue, "CGST: 90.00")
}

func TestValidator_Confidence_ThresholdIsExclusive(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.Confidence.SupplierGSTIN = 0.5

	result := v.Validate(rec)

	// Exactly at the threshold passes; only strictly below fails.
	assert.True(t, result.IsValid, "unexpected errors: %+v", result.Errors)
}

func TestValidator_Confidence_IndependentOfFormatValidity(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	// Well-formed GSTIN, low confidence: both truths hold at once.
	rec.Confidence.SupplierGSTIN = 0.2

	result := v.Validate(rec)

	require.False(t, result.IsValid)
	assert.True(t, hasErrorWithIssue(result, "supplier_gstin", invoice.IssueUnreadable))
	assert.False(t, hasErrorWithIssue(result, "supplier_gstin", invoice.IssueInvalidFormat))
}

func TestValidator_Confidence_CustomThreshold(t *testing.T) {
	v := newTestValidator(validator.WithMinConfidence(0.9))
	rec := validRecord()
	rec.Confidence.TaxValues = 0.8

	result := v.Validate(rec)

	require.False(t, result.IsValid)
	assert.True(t, hasErrorWithIssue(result, "tax_values", invoice.IssueUnreadable))
}
