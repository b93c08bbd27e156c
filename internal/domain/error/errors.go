package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4001
	CodeInvalidUserID       = 4002
	CodeInvalidAction       = 4003
	CodeInvalidTimeFrame    = 4004
	CodeUnknownActivity     = 4005
	CodeInvalidDate         = 4006
	CodeUserNotFound        = 4040
	CodeConstraintViolation = 4090
	CodeConcurrentUpdate    = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidAmount is returned when a point amount cannot be parsed as a decimal
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a ledger entry magnitude is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is empty
	ErrInvalidUserID = errors.New("user ID cannot be empty")

	// ErrInvalidAction is returned when the action is not increment or decrement
	ErrInvalidAction = errors.New("invalid point action")

	// ErrInvalidTimeFrame is returned when the leaderboard time frame is unknown
	ErrInvalidTimeFrame = errors.New("invalid leaderboard time frame")

	// ErrUnknownActivity is returned when an activity has no configured point value
	ErrUnknownActivity = errors.New("unknown activity type")

	// ErrInvalidDate is returned when a history date bound cannot be parsed
	ErrInvalidDate = errors.New("invalid date format")

	// ErrUserNotFound is returned when the requested user has no point balance row
	ErrUserNotFound = errors.New("user points not found")

	// ErrConcurrentUpdate is returned when a ledger write keeps conflicting with
	// concurrent writes to the same balance row after all retries
	ErrConcurrentUpdate = errors.New("concurrent balance update conflict")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

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
	case errors.Is(err, ErrInvalidAction):
		return CodeInvalidAction
	case errors.Is(err, ErrInvalidTimeFrame):
		return CodeInvalidTimeFrame
	case errors.Is(err, ErrUnknownActivity):
		return CodeUnknownActivity
	case errors.Is(err, ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrConcurrentUpdate):
		return CodeConcurrentUpdate
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// LedgerWriteError carries the context of a failed ledger append
type LedgerWriteError struct {
	UserID string
	Amount string
	Action string
	Source string
	Err    error
}

// Error implements the error interface for LedgerWriteError
func (e *LedgerWriteError) Error() string {
	return fmt.Sprintf("ledger write failed for user %s (amount: %s, action: %s, source: %s): %v",
		e.UserID, e.Amount, e.Action, e.Source, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerWriteError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerWriteError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_write_error",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"action":     e.Action,
		"source":     e.Source,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerWriteError creates a detailed ledger write error
func NewLedgerWriteError(userID, amount, action, source string, err error) error {
	return &LedgerWriteError{
		UserID: userID,
		Amount: amount,
		Action: action,
		Source: source,
		Err:    err,
	}
}

// ConcurrentUpdateError reports a balance write that lost its isolation race
type ConcurrentUpdateError struct {
	UserID   string
	Attempts int
}

// Error implements the error interface
func (e *ConcurrentUpdateError) Error() string {
	return fmt.Sprintf("balance update for user %s conflicted with concurrent writes after %d attempts",
		e.UserID, e.Attempts)
}

// Is checks if the target error is an ErrConcurrentUpdate
func (e *ConcurrentUpdateError) Is(target error) bool {
	return target == ErrConcurrentUpdate
}

// NewConcurrentUpdateError creates a new detailed concurrent update error
func NewConcurrentUpdateError(userID string, attempts int) error {
	return &ConcurrentUpdateError{UserID: userID, Attempts: attempts}
}

// IsConcurrentUpdateError checks if the error is a concurrency conflict
func IsConcurrentUpdateError(err error) bool {
	return errors.Is(err, ErrConcurrentUpdate)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsValidationError checks if the error stems from bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidAction) ||
		errors.Is(err, ErrInvalidTimeFrame) ||
		errors.Is(err, ErrUnknownActivity) ||
		errors.Is(err, ErrInvalidDate)
}
