package invoice_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saralgst/internal/invoice"
)

func TestNewValidationResult_DerivesValidity(t *testing.T) {
	clean := invoice.NewValidationResult(nil, nil)
	assert.True(t, clean.IsValid)
	assert.NotNil(t, clean.Errors)
	assert.NotNil(t, clean.Warnings)

	withError := invoice.NewValidationResult([]invoice.ValidationError{
		{Field: "invoice_date", IssueType: invoice.IssueMissing, Message: "invoice_date is required"},
	}, nil)
	assert.False(t, withError.IsValid)

	withWarning := invoice.NewValidationResult(nil, []invoice.ValidationWarning{
		{Field: "hsn_or_sac", Message: "HSN/SAC code is missing"},
	})
	assert.True(t, withWarning.IsValid, "warnings alone must not invalidate")
}

func TestValidationResult_JSONShape(t *testing.T) {
	result := invoice.NewValidationResult(nil, nil)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	// Empty findings serialize as [] rather than null.
	assert.JSONEq(t, `{"isValid":true,"errors":[],"warnings":[]}`, string(data))
}

func TestValidationError_NullAbsentDetectedValue(t *testing.T) {
	e := invoice.ValidationError{
		Field:     "supplier_gstin",
		IssueType: invoice.IssueMissing,
		Message:   "supplier_gstin is required",
	}

	data, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	v, present := decoded["detected_value"]
	assert.True(t, present)
	assert.Nil(t, v)
	assert.NotContains(t, decoded, "expected_value")
	assert.NotContains(t, decoded, "confidence_score")
}

func TestIsValidInvoiceType(t *testing.T) {
	assert.True(t, invoice.IsValidInvoiceType("B2B"))
	assert.True(t, invoice.IsValidInvoiceType("b2cl"))
	assert.True(t, invoice.IsValidInvoiceType("IMPORT"))
	assert.False(t, invoice.IsValidInvoiceType("RETAIL"))
	assert.False(t, invoice.IsValidInvoiceType(""))
}
