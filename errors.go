package esponce

import "github.com/esponce/client-go/internal/apierrors"

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when neither the client nor the call supplies an API key.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrMissingArgument is returned when a required argument is absent or empty.
	ErrMissingArgument = apierrors.ErrMissingArgument

	// ErrUnauthorized is returned for HTTP 401 and 403.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is returned for HTTP 429.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrNoTransport is returned by New when the environment has no usable HTTP facility.
	ErrNoTransport = apierrors.ErrNoTransport

	// ErrInvalidConfig is returned by New for an unusable configuration.
	ErrInvalidConfig = apierrors.ErrInvalidConfig
)

// EsponceError is implemented by all SDK errors.
type EsponceError interface {
	error
	EsponceError() // marker method
}

// ValidationError reports a bad argument detected before any network call.
type ValidationError = apierrors.ValidationError

// APIError represents an HTTP status of 400 or above returned by the API.
type APIError = apierrors.APIError

// NetworkError represents a transport-level failure.
type NetworkError = apierrors.NetworkError

var (
	_ EsponceError = (*ValidationError)(nil)
	_ EsponceError = (*APIError)(nil)
	_ EsponceError = (*NetworkError)(nil)
)
