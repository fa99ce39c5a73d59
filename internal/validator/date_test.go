package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saralgst/internal/invoice"
)

func TestValidator_Date_WrongFormat(t *testing.T) {
	v := newTestValidator()

	for _, date := range []string{"15/01/2024", "2024.01.15", "15-01-2024", "Jan 15, 2024"} {
		t.Run(date, func(t *testing.T) {
			rec := validRecord()
			rec.InvoiceDate = date

			result := v.Validate(rec)

			errs := errorsForField(result, "invoice_date")
			require.Len(t, errs, 1)
			assert.Equal(t, invoice.IssueInvalidFormat, errs[0].IssueType)
			assert.Equal(t, "YYYY-MM-DD", errs[0].ExpectedValue)
			assert.Equal(t, "invoice_date must be in YYYY-MM-DD format", errs[0].Message)
		})
	}
}

func TestValidator_Date_NotACalendarDate(t *testing.T) {
	v := newTestValidator()

	for _, date := range []string{"2024-02-30", "2024-13-01", "2023-02-29"} {
		t.Run(date, func(t *testing.T) {
			rec := validRecord()
			rec.InvoiceDate = date

			result := v.Validate(rec)

			errs := errorsForField(result, "invoice_date")
			require.Len(t, errs, 1)
			assert.Equal(t, invoice.IssueInvalidFormat, errs[0].IssueType)
			assert.Equal(t, "invoice_date is not a valid date", errs[0].Message)
		})
	}
}

func TestValidator_Date_Future(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.InvoiceDate = "2024-06-02" // pinned today is 2024-06-01

	result := v.Validate(rec)

	errs := errorsForField(result, "invoice_date")
	require.Len(t, errs, 1)
	assert.Equal(t, invoice.IssueMismatch, errs[0].IssueType)
	assert.Equal(t, "invoice_date cannot be in the future", errs[0].Message)
}

func TestValidator_Date_TodayAccepted(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.InvoiceDate = "2024-06-01"

	result := v.Validate(rec)

	assert.Empty(t, errorsForField(result, "invoice_date"))
}

func TestValidator_Date_TooOld(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.InvoiceDate = "2014-05-31" // just past ten years before the pinned clock

	result := v.Validate(rec)

	errs := errorsForField(result, "invoice_date")
	require.Len(t, errs, 1)
	assert.Equal(t, invoice.IssueMismatch, errs[0].IssueType)
	assert.Equal(t, "invoice_date seems unusually old (more than 10 years)", errs[0].Message)
}

func TestValidator_Date_TenYearBoundaryAccepted(t *testing.T) {
	v := newTestValidator()
	rec := validRecord()
	rec.InvoiceDate = "2014-06-01"

	result := v.Validate(rec)

	assert.Empty(t, errorsForField(result, "invoice_date"))
}
