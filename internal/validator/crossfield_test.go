package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saralgst/internal/invoice"
)

func TestValidator_PlaceOfSupply_IntraStateWithIGST(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	// Same-state GSTINs but IGST-only tax heads.
	rec.CGST = 0
	rec.SGST = 0
	rec.IGST = invoice.RupeesToMoney(180)

	result := v.Validate(rec)

	require.True(t, result.IsValid, "geography mismatch must not block: %+v", result.Errors)
	warns := warningsForField(result, "tax_type")
	require.Len(t, warns, 1)
	assert.Equal(t, "Intra-state transaction should have CGST+SGST, not IGST", warns[0].Message)
	require.NotNil(t, warns[0].DetectedValue)
	assert.Contains(t, *warns[0].DetectedValue, "Supplier: 29, Buyer: 29")
}

func TestValidator_PlaceOfSupply_InterStateWithCGSTSGST(t *testing.T) {
	v := newTestValidator()
	rec := interStateRecord()
	rec.IGST = 0
	rec.CGST = invoice.RupeesToMoney(90)
	rec.SGST = invoice.RupeesToMoney(90)

	result := v.Validate(rec)

	require.True(t, result.IsValid, "geography mismatch must not block: %+v", result.Errors)
	warns := warningsForField(result, "tax_type")
	require.Len(t, warns, 1)
	assert.Equal(t, "Inter-state transaction should have IGST, not CGST+SGST", warns[0].Message)
	assert.Contains(t, *warns[0].DetectedValue, "Supplier: 29, Buyer: 27")
}

func TestValidator_PlaceOfSupply_SkippedWhenEmpty(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.PlaceOfSupply = ""
	rec.CGST = 0
	rec.SGST = 0
	rec.IGST = invoice.RupeesToMoney(180)

	result := v.Validate(rec)

	assert.Empty(t, warningsForField(result, "tax_type"))
}

func TestValidator_PlaceOfSupply_SkippedWithoutBuyerGSTIN(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.BuyerGSTIN = ""
	rec.CGST = 0
	rec.SGST = 0
	rec.IGST = invoice.RupeesToMoney(180)

	result := v.Validate(rec)

	assert.Empty(t, warningsForField(result, "tax_type"))
}

func TestValidator_PlaceOfSupply_ConsistentRecordsSilent(t *testing.T) {
	v := newTestValidator()

	t.Run("intra-state with CGST+SGST", func(t *testing.T) {
		result := v.Validate(validRecord())
		assert.Empty(t, warningsForField(result, "tax_type"))
	})

	t.Run("inter-state with IGST", func(t *testing.T) {
		result := v.Validate(interStateRecord())
		assert.Empty(t, warningsForField(result, "tax_type"))
	})
}
