package invoice

// IssueType classifies a validation error. The set is closed.
type IssueType string

const (
	// IssueMissing means a required field is absent or empty.
	IssueMissing IssueType = "missing"
	// IssueUnreadable means a field is present but extraction
	// confidence is below threshold.
	IssueUnreadable IssueType = "unreadable"
	// IssueMismatch means two or more fields are jointly inconsistent.
	IssueMismatch IssueType = "mismatch"
	// IssueInvalidFormat means a single field does not conform to its
	// expected syntax.
	IssueInvalidFormat IssueType = "invalid_format"
)

// ValidationError is a blocking finding. The invoice is not admissible
// for filing while any errors remain.
type ValidationError struct {
	Field           string    `json:"field"`
	IssueType       IssueType `json:"issue_type"`
	DetectedValue   *string   `json:"detected_value"`
	ExpectedValue   string    `json:"expected_value,omitempty"`
	Message         string    `json:"message"`
	ConfidenceScore *float64  `json:"confidence_score,omitempty"`
}

// ValidationWarning is a non-blocking finding, surfaced to the reviewer
// but never gating validity.
type ValidationWarning struct {
	Field         string  `json:"field"`
	Message       string  `json:"message"`
	DetectedValue *string `json:"detected_value"`
}

// ValidationResult aggregates all findings for one invoice record.
// IsValid holds iff Errors is empty.
type ValidationResult struct {
	IsValid  bool                `json:"isValid"`
	Errors   []ValidationError   `json:"errors"`
	Warnings []ValidationWarning `json:"warnings"`
}

// NewValidationResult builds a result from collected findings,
// deriving IsValid so the invariant cannot be violated by construction.
func NewValidationResult(errs []ValidationError, warns []ValidationWarning) ValidationResult {
	if errs == nil {
		errs = []ValidationError{}
	}
	if warns == nil {
		warns = []ValidationWarning{}
	}
	return ValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

// StringPtr returns a pointer to s. Detected values are pointers so a
// genuinely absent value serializes as null rather than "".
func StringPtr(s string) *string { return &s }

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 { return &f }
