package ethplorer

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// ErrEmptyAddress indicates a call that needs an address was given none
	ErrEmptyAddress = errors.New("address is required")
	// ErrNotFound indicates the API does not know the requested resource
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized indicates the API key was rejected
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
)

// Ethplorer error codes carried in the {"error": {...}} envelope.
const (
	codeInvalidAPIKey = 1
	codeInvalidAddr   = 104
	codeNotToken      = 150
)

// APIError represents an error reported by the API, either through a non-2xx
// status or through the {"error": {"code", "message"}} body envelope.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("ethplorer API error: status %d: code %d: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("ethplorer API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates an unknown resource
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound || e.Code == codeInvalidAddr || e.Code == codeNotToken
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden || e.Code == codeInvalidAPIKey
}

// IsRateLimited checks if the API refused the call for exceeding its quota
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Is lets errors.Is match ErrNotFound and ErrUnauthorized
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.IsNotFound()
	case ErrUnauthorized:
		return e.IsUnauthorized()
	}
	return false
}

// DecodeError reports a response whose shape does not match the endpoint's
// record, such as an array where an object was expected. Leaf values that
// merely fail to parse never produce a DecodeError.
type DecodeError struct {
	Endpoint Endpoint
	Err      error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError reports a request that never produced a response body.
// URL carries no query string, so the API key never appears in the message.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
