package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidCredentials  = 4010
	CodeForbidden           = 4030
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041
	CodeNotFound            = 4042
	CodeEmailTaken          = 4090
	CodeInvalidState        = 4091
	CodeUserLocked          = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeProviderError  = 5020
)

// Base error types
var (
	// ErrEmailTaken is returned when registering with an email that already exists
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidCredentials is returned for any login failure, the message is
	// deliberately generic
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when a caller accesses another user's resources
	ErrForbidden = errors.New("access to this resource is forbidden")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrNoProviderAccount is returned when a payout targets a user without a
	// payment provider account
	ErrNoProviderAccount = errors.New("user has no payment provider account")

	// ErrNoBankAccount is returned when a payout targets a user without a
	// linked bank account
	ErrNoBankAccount = errors.New("user has no linked bank account")

	// ErrInvalidAmount is returned when the amount is not a finite number
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when the amount is zero or negative
	ErrNegativeAmount = errors.New("amount must be positive")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUserLocked is returned when a payout is already in flight for the user
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrProvider is the base error all payment provider failures wrap
	ErrProvider = errors.New("payment provider error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrEmailTaken):
		return CodeEmailTaken
	case errors.Is(err, ErrNoProviderAccount), errors.Is(err, ErrNoBankAccount):
		return CodeInvalidState
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrProvider):
		return CodeProviderError
	default:
		return CodeInternalServer
	}
}

// ProviderError represents a failed call to the payment provider
type ProviderError struct {
	Op     string // gateway operation, e.g. "transfer"
	Detail string // provider-side message, may be empty
	Err    error
}

// Error implements the error interface for ProviderError
func (e *ProviderError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("payment provider error in %s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("payment provider error in %s: %v", e.Op, e.Err)
}

// Is checks if the target error is an ErrProvider
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// Unwrap returns the underlying error
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ProviderError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "provider_error",
		"operation":  e.Op,
		"detail":     e.Detail,
		"error":      e.Err.Error(),
		"error_code": CodeProviderError,
	}
}

// NewProviderError creates a detailed payment provider error
func NewProviderError(op, detail string, err error) error {
	return &ProviderError{
		Op:     op,
		Detail: detail,
		Err:    err,
	}
}

// PayoutError represents a payout that failed after the provider transfer
// succeeded, so funds have moved but the workflow did not complete.
type PayoutError struct {
	UserID     uint64
	Amount     string
	TransferID string
	Reason     string
	Err        error
}

// Error implements the error interface for PayoutError
func (e *PayoutError) Error() string {
	return fmt.Sprintf("payout failed for user %d (amount: %s, transfer: %s): %s - %v",
		e.UserID, e.Amount, e.TransferID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PayoutError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PayoutError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "payout_error",
		"user_id":     e.UserID,
		"amount":      e.Amount,
		"transfer_id": e.TransferID,
		"reason":      e.Reason,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewPayoutError creates a detailed payout error
func NewPayoutError(userID uint64, amount, transferID, reason string, err error) error {
	return &PayoutError{
		UserID:     userID,
		Amount:     amount,
		TransferID: transferID,
		Reason:     reason,
		Err:        err,
	}
}

// IsProviderError checks if an error is a payment provider error
func IsProviderError(err error) bool {
	return errors.Is(err, ErrProvider)
}

// IsNotFoundError checks if an error is any of the not-found errors
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrNotFound)
}

// IsInvalidStateError checks if an error reports a user not eligible for payout
func IsInvalidStateError(err error) bool {
	return errors.Is(err, ErrNoProviderAccount) || errors.Is(err, ErrNoBankAccount)
}

// IsUserLockedError checks if an error reports a concurrent payout
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}

// IsForbiddenError checks if an error reports an ownership violation
func IsForbiddenError(err error) bool {
	return errors.Is(err, ErrForbidden)
}
