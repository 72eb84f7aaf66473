package api

import (
	"errors"
	"fmt"
)

// errCodeUnknown is reported when the server flags a failure without
// supplying an error code.
const errCodeUnknown = "unknown_error"

// APIError is the single failure kind surfaced by both transports.
// Exactly one of Code, Status or the wrapped cause describes what went
// wrong: Code carries the server's error string from an ok:false
// envelope, Status carries the HTTP status of a response that never
// produced a usable body, and the cause covers network and decode
// failures.
type APIError struct {
	Method string
	Code   string
	Status int
	cause  error
}

func (e *APIError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("slack api error: %s returned status %d", e.Method, e.Status)
	case len(e.Code) > 0:
		return fmt.Sprintf("slack api error: %s failed with %s", e.Method, e.Code)
	case e.cause != nil:
		return fmt.Sprintf("slack api error: %s: %v", e.Method, e.cause)
	default:
		return fmt.Sprintf("slack api error: %s", e.Method)
	}
}

func (e *APIError) Unwrap() error { return e.cause }

// remoteError builds the failure for an ok:false envelope.
func remoteError(method, code string) *APIError {
	if len(code) == 0 {
		code = errCodeUnknown
	}
	return &APIError{Method: method, Code: code}
}

// statusError builds the failure for a non-2xx HTTP response.
func statusError(method string, status int) *APIError {
	return &APIError{Method: method, Status: status}
}

// wrapAPIError normalizes an arbitrary failure into an *APIError. An
// error that is already normalized is returned unchanged, so wrapping
// is idempotent no matter how many layers a failure travels through.
// The check is on the concrete type, not the rendered message.
func wrapAPIError(method string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}
	return &APIError{Method: method, cause: err}
}
