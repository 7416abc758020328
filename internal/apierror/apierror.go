// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, upstream errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation failed", Fields: fields}
}

// RedirectError is emitted by the route guard. The SPA follows Redirect
// instead of rendering the requested view; From preserves the originally
// requested location for a post-login return.
type RedirectError struct {
	Detail   string `json:"detail"`
	Redirect string `json:"redirect"`
	From     string `json:"from,omitempty"`
}

func NewRedirect(msg, redirect, from string) *RedirectError {
	return &RedirectError{Detail: msg, Redirect: redirect, From: from}
}
