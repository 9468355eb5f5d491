package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrInvalidID             = errors.New("malformed resource id")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountNotVerified = errors.New("account not verified")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrSelfAction       = errors.New("action may not target own account")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// User errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrRollNoAlreadyExists = errors.New("roll number already registered")
)

// Company errors
var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrUserNotPlaced   = errors.New("user is not placed")
)

// Experience errors
var (
	ErrExperienceNotFound = errors.New("experience not found")
)

// One-time code errors
var (
	ErrCodeNotFound    = errors.New("verification code not found or expired")
	ErrCodeMismatch    = errors.New("verification code does not match")
	ErrCodeNotVerified = errors.New("verification code has not been verified")
)

// ValidationError carries the list of human-readable messages produced by
// structural signup/company validation. It wraps ErrValidationFailed so the
// central error mapper can route it to a 400.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 0 {
		return ErrValidationFailed.Error()
	}
	return e.Messages[0]
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError builds a ValidationError from messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
