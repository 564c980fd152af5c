package client

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned by New when the credential pair is
// incomplete. Credential values are never verified locally; a wrong pair
// surfaces as a 401 from the server.
var ErrMissingCredentials = errors.New("username and password are required")

// ErrorClass classifies request failures so callers can pattern-match
// instead of parsing error strings.
type ErrorClass string

const (
	// ErrorClassInvalidArgument represents caller mistakes detected before
	// any network call.
	ErrorClassInvalidArgument ErrorClass = "invalid_argument"

	// ErrorClassHTTP represents non-2xx responses from the server.
	ErrorClassHTTP ErrorClass = "http"

	// ErrorClassTransport represents timeouts and connection failures.
	ErrorClassTransport ErrorClass = "transport"
)

// RequestError is a failed SharePoint request with status context.
type RequestError struct {
	StatusCode int
	Class      ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	s := fmt.Sprintf("sharepoint %s error", e.Class)
	if e.StatusCode != 0 {
		s = fmt.Sprintf("%s (status %d)", s, e.StatusCode)
	}
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *RequestError) Unwrap() error {
	return e.Err
}
