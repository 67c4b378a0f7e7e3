package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("ORD_002", "Order was modified concurrently", http.StatusConflict),
			expected: "[ORD_002] Order was modified concurrently",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("ORD_003", "test", http.StatusNotFound)
	assert.Nil(t, appErr.Unwrap())
}

func TestHasCode(t *testing.T) {
	inner := errors.New("ledger down")
	wrapped := fmt.Errorf("reconcile: %w", ErrOrderUpdateFailed(inner))

	assert.True(t, HasCode(wrapped, CodeOrderUpdateFailed))
	assert.False(t, HasCode(wrapped, CodeConcurrentUpdate))
	assert.False(t, HasCode(inner, CodeOrderUpdateFailed))
	assert.False(t, HasCode(nil, CodeOrderUpdateFailed))
	assert.True(t, errors.Is(wrapped, inner))
}

func TestOrderErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"OrderUpdateFailed", ErrOrderUpdateFailed(errors.New("x")), "ORD_001", 500},
		{"ConcurrentUpdate", ErrConcurrentUpdate(), "ORD_002", 409},
		{"OrderNotFound", ErrOrderNotFound("000001"), "ORD_003", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestWebhookErrors(t *testing.T) {
	assert.Equal(t, "WH_001", ErrInvalidNotification("bad").Code)
	assert.Equal(t, http.StatusBadRequest, ErrInvalidNotification("bad").HTTPStatus)
	assert.Equal(t, "WH_002", ErrInvalidSignature().Code)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidSignature().HTTPStatus)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg down")

	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	lockErr := ErrLockTimeout(inner)
	assert.Equal(t, "SYS_002", lockErr.Code)
	assert.Equal(t, 503, lockErr.HTTPStatus)

	internal := InternalError(inner)
	assert.Equal(t, "SYS_001", internal.Code)
	assert.True(t, errors.Is(internal, inner))
}

func TestErrorMessage_WithOrderReference(t *testing.T) {
	err := ErrOrderNotFound("100000042")
	assert.Equal(t, "Order 100000042 not found", err.Message)
}
