package apierrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status code only",
			err:      &APIError{StatusCode: 500},
			expected: "HTTP Status Code 500",
		},
		{
			name:     "with subcode and details",
			err:      &APIError{StatusCode: 404, Subcode: "42", Details: "not found"},
			expected: "HTTP Status Code 404, subcode 42, details: not found",
		},
		{
			name:     "details only",
			err:      &APIError{StatusCode: 400, Details: "content is required"},
			expected: "HTTP Status Code 400, details: content is required",
		},
		{
			name:     "with request ID",
			err:      &APIError{StatusCode: 503, RequestID: "req-456"},
			expected: "HTTP Status Code 503 (request_id: req-456)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		target   error
		expected bool
	}{
		{"401 matches ErrUnauthorized", &APIError{StatusCode: 401}, ErrUnauthorized, true},
		{"403 matches ErrUnauthorized", &APIError{StatusCode: 403}, ErrUnauthorized, true},
		{"401 does not match ErrNotFound", &APIError{StatusCode: 401}, ErrNotFound, false},
		{"404 matches ErrNotFound", &APIError{StatusCode: 404}, ErrNotFound, true},
		{"429 matches ErrRateLimited", &APIError{StatusCode: 429}, ErrRateLimited, true},
		{"500 matches nothing", &APIError{StatusCode: 500}, ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.Is(tt.err, tt.target))
		})
	}
}

func TestAPIError_WrappedIs(t *testing.T) {
	wrapped := fmt.Errorf("get campaign: %w", &APIError{StatusCode: 404})
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var apiErr *APIError
	require.ErrorAs(t, wrapped, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestFromResponse(t *testing.T) {
	h := http.Header{}
	h.Set("x-api-error-code", "42")
	h.Set("x-api-error", "not found")
	h.Set("X-Request-ID", "abc")

	apiErr := FromResponse(404, h)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "42", apiErr.Subcode)
	assert.Equal(t, "not found", apiErr.Details)
	assert.Equal(t, "abc", apiErr.RequestID)
}

func TestFromResponse_NilHeader(t *testing.T) {
	apiErr := FromResponse(500, nil)
	assert.Empty(t, apiErr.Subcode)
	assert.Empty(t, apiErr.Details)
}

func TestValidationError(t *testing.T) {
	keyErr := Missing("auth", "API key is missing")
	assert.ErrorIs(t, keyErr, ErrMissingAPIKey)
	assert.NotErrorIs(t, keyErr, ErrMissingArgument)

	idErr := Missing("id", "campaign id is missing")
	assert.ErrorIs(t, idErr, ErrMissingArgument)
	assert.EqualError(t, idErr, "validation failed: id: campaign id is missing")

	bare := &ValidationError{Message: "bad"}
	assert.EqualError(t, bare, "validation failed: bad")
}

func TestNetworkError(t *testing.T) {
	err := &NetworkError{Err: context.DeadlineExceeded, Method: "GET", URL: "https://www.esponce.com/api/v3/track/list"}
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.EqualError(t, err, "network error: GET https://www.esponce.com/api/v3/track/list: context deadline exceeded")

	bare := &NetworkError{Err: errors.New("connection refused")}
	assert.EqualError(t, bare, "network error: connection refused")
}
