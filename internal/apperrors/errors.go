package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller lacks the permission required for the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates a precondition (version token) did not match the stored state.
var ErrConflict = errors.New("conflict")

// ErrStore indicates the persistent store failed.
var ErrStore = errors.New("store error")

// ErrApprovalPending indicates an entry was persisted but its approval transition failed.
var ErrApprovalPending = errors.New("entry persisted but approval is pending")

// ValidationError reports an arithmetic or structural invariant violation.
// TotalDebit and TotalCredit are set when the violation is an unbalanced entry.
type ValidationError struct {
	Message     string
	TotalDebit  *decimal.Decimal
	TotalCredit *decimal.Decimal
}

func (e *ValidationError) Error() string {
	if e.TotalDebit != nil && e.TotalCredit != nil {
		return fmt.Sprintf("%s: debits %s, credits %s", e.Message, e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2))
	}
	return e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Difference returns |debit - credit| when both totals are present.
func (e *ValidationError) Difference() decimal.Decimal {
	if e.TotalDebit == nil || e.TotalCredit == nil {
		return decimal.Zero
	}
	return e.TotalDebit.Sub(*e.TotalCredit).Abs()
}

// NewValidationError builds a ValidationError without totals.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NewUnbalancedError builds a ValidationError carrying both totals.
func NewUnbalancedError(totalDebit, totalCredit decimal.Decimal) *ValidationError {
	return &ValidationError{
		Message:     "journal entry is not balanced",
		TotalDebit:  &totalDebit,
		TotalCredit: &totalCredit,
	}
}

// AuthorizationError is returned when a user lacks a permission.
type AuthorizationError struct {
	UserID     string
	Permission string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %s lacks permission %q", e.UserID, e.Permission)
}

func (e *AuthorizationError) Is(target error) bool { return target == ErrForbidden }

// NotFoundError names the missing resource.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFoundError builds a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// StoreError wraps a failure of the persistent store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return "store: " + e.Op
	}
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Is(target error) bool { return target == ErrStore }

func (e *StoreError) Unwrap() error { return e.Err }

// ApprovalPendingError means the entry was inserted as BORRADOR but the
// transition to APROBADO failed. Retry the approval, do not resubmit the entry.
type ApprovalPendingError struct {
	EntryID string
	Version int
	Err     error
}

func (e *ApprovalPendingError) Error() string {
	return fmt.Sprintf("entry %s persisted as draft, approval failed: %v", e.EntryID, e.Err)
}

func (e *ApprovalPendingError) Is(target error) bool { return target == ErrApprovalPending }

func (e *ApprovalPendingError) Unwrap() error { return e.Err }

// ConflictError is returned when the caller's version token does not match.
type ConflictError struct {
	Resource string
	ID       string
	Expected int
	Actual   int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s version mismatch: expected %d, found %d", e.Resource, e.ID, e.Expected, e.Actual)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// AppError carries an HTTP-ish code alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is treats 5xx AppErrors as store failures so services can surface them uniformly.
func (e *AppError) Is(target error) bool {
	return target == ErrStore && e.Code >= 500
}
