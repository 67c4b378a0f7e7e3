package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// Error codes.
const (
	CodeOrderUpdateFailed   = "ORD_001"
	CodeConcurrentUpdate    = "ORD_002"
	CodeOrderNotFound       = "ORD_003"
	CodeInvalidNotification = "WH_001"
	CodeInvalidSignature    = "WH_002"
	CodeInternal            = "SYS_001"
	CodeLockTimeout         = "SYS_002"
)

// ---- Order reconciliation (ORD) ----

// ErrOrderUpdateFailed wraps a collaborator failure during reconciliation.
// The snapshot produced by the failing call must not be persisted.
func ErrOrderUpdateFailed(err error) *AppError {
	return Wrap(CodeOrderUpdateFailed, "Order update failed", http.StatusInternalServerError, err)
}

func ErrConcurrentUpdate() *AppError {
	return New(CodeConcurrentUpdate, "Order was modified concurrently", http.StatusConflict)
}

func ErrOrderNotFound(reference string) *AppError {
	return New(CodeOrderNotFound, fmt.Sprintf("Order %s not found", reference), http.StatusNotFound)
}

// ---- Webhook ingestion (WH) ----

func ErrInvalidNotification(message string) *AppError {
	return New(CodeInvalidNotification, message, http.StatusBadRequest)
}

func ErrInvalidSignature() *AppError {
	return New(CodeInvalidSignature, "Invalid notification signature", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap(CodeLockTimeout, "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
