// Package apierror provides the typed errors returned to API clients.
// Services return these directly; handlers serialize them with the matching
// HTTP status so that internal details (stack traces, SQL errors) never leak.
package apierror

import "net/http"

// Error is the canonical error envelope for all 4xx/5xx responses.
// Details is optional and carries field- or line-level diagnostics.
type Error struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Details    string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Validation is the fixed envelope for schema-validation failures.
func Validation(details string) *Error {
	return &Error{Message: "Validation failed", StatusCode: http.StatusBadRequest, Details: details}
}

// BadRequest covers rejected requests outside schema validation
// (duplicate product names, missing referenced entities, stock shortfalls).
func BadRequest(message, details string) *Error {
	return &Error{Message: message, StatusCode: http.StatusBadRequest, Details: details}
}

// Conflict signals a uniqueness violation (409).
func Conflict(message, details string) *Error {
	return &Error{Message: message, StatusCode: http.StatusConflict, Details: details}
}

// Unauthorized signals failed authentication. Callers must use the same
// message for unknown accounts and wrong passwords so the two cases are
// indistinguishable from outside.
func Unauthorized(message string) *Error {
	return &Error{Message: message, StatusCode: http.StatusUnauthorized}
}

// NotFound signals an absent resource on lookup endpoints.
func NotFound(message string) *Error {
	return &Error{Message: message, StatusCode: http.StatusNotFound}
}

// TooManyRequests signals rate limiting (429).
func TooManyRequests(message string) *Error {
	return &Error{Message: message, StatusCode: http.StatusTooManyRequests}
}

// Internal is the generic 500 returned for unexpected failures.
func Internal() *Error {
	return &Error{Message: "internal server error", StatusCode: http.StatusInternalServerError}
}
