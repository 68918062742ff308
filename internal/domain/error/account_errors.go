package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account does not exist or belongs to another user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNameRequired is returned when an account is created without a name.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrAccountNameTooLong is returned when the account name exceeds the maximum length.
	ErrAccountNameTooLong = errors.New("account name too long")

	// ErrAccountNameExists is returned when the user already has an account with the same name.
	ErrAccountNameExists = errors.New("account name already exists")

	// ErrEmptyAccountIDs is returned when an empty list of account IDs is provided.
	ErrEmptyAccountIDs = errors.New("account IDs list cannot be empty")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNameRequired AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameTooLong  AccountErrorCode = "ACC-010002"
	ErrCodeAccountNotFound     AccountErrorCode = "ACC-010003"
	ErrCodeAccountNameExists   AccountErrorCode = "ACC-010004"
	ErrCodeEmptyAccountIDs     AccountErrorCode = "ACC-010005"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
