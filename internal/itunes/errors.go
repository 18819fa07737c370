package itunes

import (
	"errors"
	"fmt"
)

// ErrFetchFailed is matched by every error returned from a fetch
var ErrFetchFailed = errors.New("itunes fetch failed")

// TransportError indicates the request did not produce an HTTP response
type TransportError struct {
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("itunes transport error: %v", e.Err)
}

// Unwrap returns the underlying transport error
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFetchFailed
func (e *TransportError) Is(target error) bool {
	return target == ErrFetchFailed
}

// StatusError represents a non-2xx response from the API
type StatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("itunes API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("itunes API error: status %d: %s", e.StatusCode, e.Body)
}

// Is reports whether target is ErrFetchFailed
func (e *StatusError) Is(target error) bool {
	return target == ErrFetchFailed
}

// IsServerError checks if the status is a 5xx
func (e *StatusError) IsServerError() bool {
	return e.StatusCode >= 500
}

// DecodeError indicates a malformed or incomplete response body
type DecodeError struct {
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("itunes decode error: %v", e.Err)
}

// Unwrap returns the underlying decode error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFetchFailed
func (e *DecodeError) Is(target error) bool {
	return target == ErrFetchFailed
}

// Decode failure causes
var (
	errMissingResults = errors.New("response has no results field")
	errMissingField   = errors.New("record is missing a required field")
)
