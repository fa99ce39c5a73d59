package validator

import (
	"regexp"
	"strings"

	"saralgst/internal/invoice"
)

// HSN codes are 4, 6 or 8 digits; SAC codes are 6 digits.
var hsnPattern = regexp.MustCompile(`^\d{4,8}$`)

// checkHSNOrSAC validates the commodity/service classification code.
// Findings here are warnings only: the mandatory-field check already
// emits the blocking error for an absent code, and a malformed code is
// correctable at review without blocking the pipeline.
func (v *Validator) checkHSNOrSAC(hsnSac string, f *findings) {
	clean := strings.TrimSpace(hsnSac)
	if clean == "" {
		f.addWarning(invoice.ValidationWarning{
			Field:         "hsn_or_sac",
			Message:       "HSN/SAC code is missing. It is recommended for GST compliance",
			DetectedValue: nil,
		})
		return
	}

	if !hsnPattern.MatchString(clean) {
		f.addWarning(invoice.ValidationWarning{
			Field:         "hsn_or_sac",
			Message:       "HSN/SAC code should be 4-8 digits for HSN or 6 digits for SAC",
			DetectedValue: invoice.StringPtr(hsnSac),
		})
	}
}
