package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// ErrAccessDenied reports a successful upstream authentication whose identity
// is not an admin. Kept distinct from credential failure so the login form can
// say "admin privileges required" instead of "wrong password".
var ErrAccessDenied = &DomainError{
	Code:       "ACCESS_DENIED",
	Message:    "access denied: admin privileges required",
	HTTPStatus: http.StatusForbidden,
}

// ErrAuthenticationFailed covers credential rejection and upstream/transport
// failure during login. The two are deliberately not distinguished.
var ErrAuthenticationFailed = &DomainError{
	Code:       "AUTH_FAILED",
	Message:    "invalid credentials or upstream error",
	HTTPStatus: http.StatusUnauthorized,
}

// NewRoleDenied is ErrAccessDenied carrying the rejected role in Details.
// errors.Is against ErrAccessDenied still matches through the wrap.
func NewRoleDenied(role string) error {
	return &DomainError{
		Code:       ErrAccessDenied.Code,
		Message:    ErrAccessDenied.Message,
		HTTPStatus: ErrAccessDenied.HTTPStatus,
		Details:    map[string]any{"role": role},
		Err:        ErrAccessDenied,
	}
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewFieldError reports a client-side precondition failure on a single field.
func NewFieldError(field, message string) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, map[string]any{"field": field})
}

// FieldOf extracts the offending field from a validation error, if any.
func FieldOf(err error) string {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Details == nil {
		return ""
	}
	field, _ := domainErr.Details["field"].(string)
	return field
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewForbidden(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

func NewUpstreamError(status int, message string) error {
	if message == "" {
		message = "upstream request failed"
	}
	return NewDomainError("UPSTREAM_ERROR", message, status, nil)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
