package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx response from the remote API. Body carries
// the upstream error text (truncated) for logging and, where the contract
// allows, pass-through to the caller.
type StatusError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned %d", e.Endpoint, e.StatusCode)
}

// MalformedResponseError reports a 2xx response whose payload failed schema
// validation at the client boundary. The broken payload never reaches the
// presentation layer.
type MalformedResponseError struct {
	Endpoint string
	Reason   string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("upstream %s returned a malformed response: %s", e.Endpoint, e.Reason)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an upstream 401 or 403.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) &&
		(se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden)
}
