package validator

import (
	"fmt"
	"regexp"
	"strings"

	"saralgst/internal/invoice"
)

// GSTIN structure: 2-digit state code, 10-char PAN (5 letters, 4
// digits, 1 letter), entity code, literal Z, checksum character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

// checkGSTIN validates a single GSTIN structurally. The checksum digit
// is not verified algorithmically; only shape and the state-code prefix
// are checked.
func (v *Validator) checkGSTIN(gstin, field string, confidence *float64, f *findings) {
	if strings.TrimSpace(gstin) == "" {
		f.addError(invoice.ValidationError{
			Field:           field,
			IssueType:       invoice.IssueMissing,
			DetectedValue:   nil,
			Message:         fmt.Sprintf("%s is required", field),
			ConfidenceScore: confidence,
		})
		return
	}

	clean := strings.ToUpper(strings.TrimSpace(gstin))

	if len(clean) != 15 {
		f.addError(invoice.ValidationError{
			Field:           field,
			IssueType:       invoice.IssueInvalidFormat,
			DetectedValue:   invoice.StringPtr(gstin),
			ExpectedValue:   "15 character GSTIN",
			Message:         fmt.Sprintf("%s must be 15 characters long", field),
			ConfidenceScore: confidence,
		})
		return
	}

	if !gstinPattern.MatchString(clean) {
		f.addError(invoice.ValidationError{
			Field:           field,
			IssueType:       invoice.IssueInvalidFormat,
			DetectedValue:   invoice.StringPtr(gstin),
			Message:         fmt.Sprintf("%s format is invalid. Expected format: 22AAAAA0000A1Z5", field),
			ConfidenceScore: confidence,
		})
		return
	}

	stateCode := clean[:2]
	if !v.states.Known(stateCode) {
		f.addError(invoice.ValidationError{
			Field:           field,
			IssueType:       invoice.IssueInvalidFormat,
			DetectedValue:   invoice.StringPtr(gstin),
			Message:         fmt.Sprintf("Invalid state code '%s' in %s", stateCode, field),
			ConfidenceScore: confidence,
		})
	}
}

// StateCodeFromGSTIN extracts the 2-digit state prefix, or "" when the
// GSTIN is too short to carry one.
func StateCodeFromGSTIN(gstin string) string {
	if len(gstin) < 2 {
		return ""
	}
	return gstin[:2]
}
