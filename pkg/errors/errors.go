package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Client errors
	ErrorTypeInvalidFilter ErrorType = "INVALID_FILTER"

	// Store errors
	ErrorTypeConnectivity ErrorType = "CONNECTIVITY"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeProvisioning ErrorType = "PROVISIONING"
	ErrorTypeScan         ErrorType = "SCAN"
	ErrorTypeDatabase     ErrorType = "DATABASE"

	// Service errors
	ErrorTypeInternal    ErrorType = "INTERNAL"
	ErrorTypeUnavailable ErrorType = "UNAVAILABLE"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType
	Message    string
	Cause      error
	HTTPStatus int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewInvalidFilterError reports malformed client input such as a non-numeric year.
func NewInvalidFilterError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidFilter,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewConnectivityError reports that the store could not be reached.
func NewConnectivityError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeConnectivity,
		Message:    fmt.Sprintf("store unreachable during '%s'", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewConflictError reports a table that already exists.
func NewConflictError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Message:    message,
		Cause:      err,
		HTTPStatus: http.StatusConflict,
	}
}

// NewProvisioningError reports a rejected table definition or capacity.
func NewProvisioningError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeProvisioning,
		Message:    message,
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewScanError carries the provider's message for a failed scan.
func NewScanError(message string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeScan,
		Message:    message,
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeDatabase,
		Message:    fmt.Sprintf("database operation '%s' failed", operation),
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewUnavailableError creates a service unavailable error
func NewUnavailableError(service string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnavailable,
		Message:    fmt.Sprintf("service '%s' is unavailable", service),
		HTTPStatus: http.StatusServiceUnavailable,
	}
}

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsInvalidFilter checks if an error is an invalid filter error
func IsInvalidFilter(err error) bool {
	return IsType(err, ErrorTypeInvalidFilter)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return IsType(err, ErrorTypeConflict)
}

// StatusCode maps an error to the HTTP status it should be reported with.
func StatusCode(err error) int {
	if appErr := GetAppError(err); appErr != nil && appErr.HTTPStatus != 0 {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// Message returns the text shown to clients for err.
func Message(err error) string {
	appErr := GetAppError(err)
	if appErr == nil {
		return err.Error()
	}
	if appErr.Cause != nil && appErr.Type == ErrorTypeConnectivity {
		return fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
	}
	return appErr.Message
}
