package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation        = 4001
	CodeInsufficientFunds = 4002
	CodeDuplicateEmail    = 4003
	CodeInvalidCredential = 4004
	CodeRequestDecided    = 4005
	CodeInvalidVIPLevel   = 4006
	CodeUserNotFound      = 4040
	CodeRequestNotFound   = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrValidation is returned when request input fails a bounds or format check
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientFunds is returned when a debit exceeds the available balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrDuplicateEmail is returned when the email is already registered
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned when the email/password pair matches no record
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPasswordMismatch is returned when password and confirmation differ
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAdminNotFound is returned when the requested admin doesn't exist
	ErrAdminNotFound = errors.New("admin not found")

	// ErrRequestNotFound is returned when no owned request matches the given ID
	ErrRequestNotFound = errors.New("request not found")

	// ErrRequestDecided is returned when approving or rejecting a request twice
	ErrRequestDecided = errors.New("request already decided")

	// ErrTransactionNotFound is returned when no ledger entry matches the lookup
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionSettled is returned when transitioning a non-pending ledger entry
	ErrTransactionSettled = errors.New("transaction already settled")

	// ErrInvalidVIPLevel is returned for VIP levels outside the tier table
	ErrInvalidVIPLevel = errors.New("invalid VIP level")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidEmail is returned when the email is empty
	ErrInvalidEmail = errors.New("email cannot be empty")

	// ErrInvalidRequestID is returned when the request ID is empty
	ErrInvalidRequestID = errors.New("request ID cannot be empty")

	// ErrInvalidTransactionID is returned when the transaction ID is empty
	ErrInvalidTransactionID = errors.New("transaction ID cannot be empty")

	// ErrNoActiveSession is returned when an operation needs a logged-in identity
	ErrNoActiveSession = errors.New("no active session")

	// ErrDatabaseConnection is returned when the store is unreachable
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns the standardized code for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrInvalidUserID), errors.Is(err, ErrInvalidEmail):
		return CodeValidation
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredential
	case errors.Is(err, ErrRequestDecided), errors.Is(err, ErrTransactionSettled):
		return CodeRequestDecided
	case errors.Is(err, ErrInvalidVIPLevel):
		return CodeInvalidVIPLevel
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrAdminNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrRequestNotFound), errors.Is(err, ErrTransactionNotFound):
		return CodeRequestNotFound
	default:
		return CodeInternalServer
	}
}

// ValidationError carries the rejected field and bounds for amount checks
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// Is makes the typed error match ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a field-level validation error
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientFundsError provides balance context for failed debits
type InsufficientFundsError struct {
	UserID    string
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %s: required %d, available %d",
		e.UserID, e.Requested, e.Available)
}

// Is makes the typed error match ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a detailed insufficient funds error
func NewInsufficientFundsError(userID string, requested, available int64) error {
	return &InsufficientFundsError{UserID: userID, Requested: requested, Available: available}
}

// RequestError wraps a failure while handling an admin request decision
type RequestError struct {
	RequestID string
	UserID    string
	Kind      string
	Reason    string
	Err       error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s (user %s, kind %s): %s - %v",
		e.RequestID, e.UserID, e.Kind, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *RequestError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RequestError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "request_error",
		"request_id": e.RequestID,
		"user_id":    e.UserID,
		"kind":       e.Kind,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRequestError creates a detailed request handling error
func NewRequestError(requestID, userID, kind, reason string, err error) error {
	return &RequestError{RequestID: requestID, UserID: userID, Kind: kind, Reason: reason, Err: err}
}

// IsValidationError checks if the error is a validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInsufficientFundsError checks if the error is an insufficient funds failure
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrAdminNotFound) ||
		errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

// IsDuplicateError checks if the error is a duplicate registration
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicateEmail)
}
