// Package errors provides standardized error handling for platform API calls.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeTransportFailed  ErrorCode = "TRANSPORT_FAILED"
	ErrCodeDecodeFailed     ErrorCode = "DECODE_FAILED"
	ErrCodeAPIRejected      ErrorCode = "API_REJECTED"
	ErrCodeNotFound         ErrorCode = "RESOURCE_NOT_FOUND"
	ErrCodeUnauthorized     ErrorCode = "UNAUTHORIZED"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeLoginFailed      ErrorCode = "LOGIN_FAILED"
)

// ErrUnauthorized is returned for any 401 response. The session layer treats
// it as a global logout trigger; callers should not retry.
var ErrUnauthorized = errors.New("unauthorized")

// APIError represents a non-2xx response from the platform API, excluding
// 401 which is always surfaced as ErrUnauthorized.
type APIError struct {
	Code      ErrorCode `json:"code"`
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("APIError[%s]: %d %s: %s", e.Code, e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("APIError[%s]: %d %s", e.Code, e.Status, e.Message)
}

// NewAPIError builds an APIError from a response status and the server's
// detail string, if any.
func NewAPIError(status int, detail string) *APIError {
	code := ErrCodeAPIRejected
	if status == http.StatusNotFound {
		code = ErrCodeNotFound
	}
	return &APIError{
		Code:      code,
		Status:    status,
		Message:   http.StatusText(status),
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}

// NewTransportError wraps a network-level failure (dial, TLS, timeout).
func NewTransportError(err error) *APIError {
	return &APIError{
		Code:      ErrCodeTransportFailed,
		Status:    0,
		Message:   "request transport failed",
		Detail:    err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// NewDecodeError wraps a body-decoding failure on a 2xx response.
func NewDecodeError(err error) *APIError {
	return &APIError{
		Code:      ErrCodeDecodeFailed,
		Status:    0,
		Message:   "response decode failed",
		Detail:    err.Error(),
		Timestamp: time.Now().UTC(),
	}
}

// IsUnauthorized reports whether err is the global-logout trigger.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound reports whether err is a 404 APIError.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return false
}

// StatusOf returns the HTTP status carried by err, or 0 for transport and
// non-API failures.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
