// Package errors defines the application error taxonomy. Every failure the
// client surfaces is one of: local validation, missing/expired credentials,
// a backend business rejection (RemoteError, message kept verbatim), a
// transport failure (TransportError), or payment-poll exhaustion.
package errors

import (
	"net/http"

	"shopmate/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code (backend's, or the closest local equivalent)
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation errors, raised before any network call.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrAddressIncomplete = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_INCOMPLETE",
		"delivery address and contact details must be complete before placing an order",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"cart is empty",
		"",
	)

	// Authentication errors, forcing the session closed.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"not signed in",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"session has expired, please sign in again",
		"",
	)

	ErrAdminRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_REQUIRED",
		"admin access required",
		"",
	)

	// Flow-control errors.
	ErrCheckoutInFlight = NewBaseError(
		http.StatusConflict,
		"CHECKOUT_IN_FLIGHT",
		"an order submission is already in progress",
		"",
	)

	ErrFlowOrder = NewBaseError(
		http.StatusConflict,
		"FLOW_ORDER",
		"this step is not available yet",
		"",
	)

	// Payment-poll exhaustion. Terminal but soft: the caller may re-check.
	ErrPaymentTimeout = NewBaseError(
		http.StatusRequestTimeout,
		"PAYMENT_TIMEOUT",
		"payment confirmation timed out, check the payment status again later",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// RemoteError is a business-rule rejection from the backend. The backend's
// message is carried verbatim: the client surfaces it without rewording and
// performs no local state mutation in response.
type RemoteError struct {
	statusCode int
	detail     string
}

// NewRemoteError creates a RemoteError from a backend response.
func NewRemoteError(statusCode int, detail string) *RemoteError {
	if detail == "" {
		detail = http.StatusText(statusCode)
	}

	return &RemoteError{statusCode: statusCode, detail: detail}
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	return e.detail
}

// HTTPCode returns the backend's HTTP status code
func (e *RemoteError) HTTPCode() int {
	return e.statusCode
}

// ErrorCode returns the business error code
func (e *RemoteError) ErrorCode() string {
	return "REMOTE_REJECTED"
}

// Message returns the backend's message, verbatim
func (e *RemoteError) Message() string {
	return e.detail
}

// Details returns detailed error information
func (e *RemoteError) Details() string {
	return ""
}

// Unauthorized reports whether the rejection invalidates the session.
func (e *RemoteError) Unauthorized() bool {
	return e.statusCode == http.StatusUnauthorized
}

// TransportError is a network-level failure: the operation is considered
// not-applied and safe to retry manually. No automatic retry happens.
type TransportError struct {
	err error
}

// NewTransportError wraps a transport-level failure.
func NewTransportError(err error) *TransportError {
	return &TransportError{err: err}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return errors.Wrap(e.err, "request failed").Error()
}

// Unwrap exposes the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *TransportError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *TransportError) ErrorCode() string {
	return "TRANSPORT_FAILED"
}

// Message returns the user-facing error message
func (e *TransportError) Message() string {
	return "could not reach the store, try again"
}

// Details returns detailed error information
func (e *TransportError) Details() string {
	return e.err.Error()
}
