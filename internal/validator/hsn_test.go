package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saralgst/internal/invoice"
)

func TestValidator_HSN_ValidLengths(t *testing.T) {
	v := newTestValidator()

	for _, code := range []string{"9983", "998313", "99831310", "39269099"} {
		t.Run(code, func(t *testing.T) {
			rec := validRecord()
			rec.HSNOrSAC = code

			result := v.Validate(rec)

			assert.Empty(t, warningsForField(result, "hsn_or_sac"))
		})
	}
}

func TestValidator_HSN_MalformedWarnsOnly(t *testing.T) {
	v := newTestValidator()

	for _, code := range []string{"99", "998313999", "ABC123", "99-83"} {
		t.Run(code, func(t *testing.T) {
			rec := validRecord()
			rec.HSNOrSAC = code

			result := v.Validate(rec)

			// Malformed codes never block.
			assert.True(t, result.IsValid, "unexpected errors: %+v", result.Errors)
			warns := warningsForField(result, "hsn_or_sac")
			require.Len(t, warns, 1)
			assert.Equal(t, "HSN/SAC code should be 4-8 digits for HSN or 6 digits for SAC", warns[0].Message)
		})
	}
}

func TestValidator_HSN_MissingIsBothErrorAndWarning(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.HSNOrSAC = ""

	result := v.Validate(rec)

	// The mandatory-field check blocks; the format check adds its own
	// advisory note.
	require.False(t, result.IsValid)
	assert.True(t, hasErrorWithIssue(result, "hsn_or_sac", invoice.IssueMissing))
	warns := warningsForField(result, "hsn_or_sac")
	require.Len(t, warns, 1)
	assert.Equal(t, "HSN/SAC code is missing. It is recommended for GST compliance", warns[0].Message)
}
