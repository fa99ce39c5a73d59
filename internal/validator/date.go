package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"saralgst/internal/invoice"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// maxInvoiceAge is how far back an invoice date may sit before it is
// flagged as unusually old.
const maxInvoiceAgeYears = 10

// checkDate validates the invoice date: ISO shape, real calendar date,
// not in the future, not unusually old. Comparisons are at day
// granularity against the injected clock. An empty date is skipped
// here; the mandatory-field check already reports it.
func (v *Validator) checkDate(date, field string, f *findings) {
	if strings.TrimSpace(date) == "" {
		return
	}

	if !datePattern.MatchString(date) {
		f.addError(invoice.ValidationError{
			Field:         field,
			IssueType:     invoice.IssueInvalidFormat,
			DetectedValue: invoice.StringPtr(date),
			ExpectedValue: "YYYY-MM-DD",
			Message:       fmt.Sprintf("%s must be in YYYY-MM-DD format", field),
		})
		return
	}

	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		f.addError(invoice.ValidationError{
			Field:         field,
			IssueType:     invoice.IssueInvalidFormat,
			DetectedValue: invoice.StringPtr(date),
			Message:       fmt.Sprintf("%s is not a valid date", field),
		})
		return
	}

	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if parsed.After(today) {
		f.addError(invoice.ValidationError{
			Field:         field,
			IssueType:     invoice.IssueMismatch,
			DetectedValue: invoice.StringPtr(date),
			Message:       fmt.Sprintf("%s cannot be in the future", field),
		})
	}

	if parsed.Before(today.AddDate(-maxInvoiceAgeYears, 0, 0)) {
		f.addError(invoice.ValidationError{
			Field:         field,
			IssueType:     invoice.IssueMismatch,
			DetectedValue: invoice.StringPtr(date),
			Message:       fmt.Sprintf("%s seems unusually old (more than %d years)", field, maxInvoiceAgeYears),
		})
	}
}
