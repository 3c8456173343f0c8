// Package apierrors provides shared error types for the Esponce client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when neither the client nor the call supplies an API key.
	ErrMissingAPIKey = errors.New("API key is missing")

	// ErrMissingArgument is returned when a required argument is absent or empty.
	ErrMissingArgument = errors.New("required argument is missing")

	// ErrUnauthorized is returned when the API key is rejected.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrNotFound is returned when a campaign, QR Code or other resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrNoTransport is returned when the host environment has no usable HTTP facility.
	ErrNoTransport = errors.New("no HTTP facility available in this environment")

	// ErrInvalidConfig is returned when the client configuration is unusable.
	ErrInvalidConfig = errors.New("invalid client configuration")
)

// Header names the API uses to describe a failed request.
const (
	HeaderErrorCode = "X-Api-Error-Code"
	HeaderError     = "X-Api-Error"
)

// ValidationError reports a bad argument detected before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	if e.Field == "auth" {
		return target == ErrMissingAPIKey
	}
	return target == ErrMissingArgument
}

// EsponceError implements the EsponceError interface.
func (e *ValidationError) EsponceError() {}

// Missing returns a ValidationError for an absent required field.
func Missing(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError represents an HTTP status >= 400 returned by the Esponce API.
type APIError struct {
	StatusCode int
	Subcode    string // x-api-error-code
	Details    string // x-api-error
	RequestID  string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "HTTP Status Code %d", e.StatusCode)
	if e.Subcode != "" {
		fmt.Fprintf(&b, ", subcode %s", e.Subcode)
	}
	if e.Details != "" {
		fmt.Fprintf(&b, ", details: %s", e.Details)
	}
	if e.RequestID != "" {
		fmt.Fprintf(&b, " (request_id: %s)", e.RequestID)
	}
	return b.String()
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == ErrUnauthorized
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// EsponceError implements the EsponceError interface.
func (e *APIError) EsponceError() {}

// FromResponse builds an APIError from a status code and the response headers.
// A nil header yields an error without subcode or details.
func FromResponse(statusCode int, header http.Header) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if header != nil {
		apiErr.Subcode = header.Get(HeaderErrorCode)
		apiErr.Details = header.Get(HeaderError)
		apiErr.RequestID = header.Get("X-Request-Id")
	}
	return apiErr
}

// NetworkError represents a transport-level failure: DNS, refused connection,
// timeout, or a host facility that gave up before producing a response.
type NetworkError struct {
	Err    error
	Method string
	URL    string
}

func (e *NetworkError) Error() string {
	if e.Method != "" && e.URL != "" {
		return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// EsponceError implements the EsponceError interface.
func (e *NetworkError) EsponceError() {}
