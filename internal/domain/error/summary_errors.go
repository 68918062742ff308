package error

import "errors"

// Summary domain errors.
var (
	// ErrInvalidDateFormat is returned when a date is not in dd-MM-yyyy format.
	ErrInvalidDateFormat = errors.New("invalid date format, expected dd-MM-yyyy")

	// ErrSummaryUnavailable is returned when the summary cannot be computed.
	ErrSummaryUnavailable = errors.New("summary unavailable")
)

// SummaryErrorCode defines error codes for summary errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateFormat SummaryErrorCode = "SUM-010001"

	// Internal errors (99XXXX)
	ErrCodeSummaryInternalError SummaryErrorCode = "SUM-990001"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
