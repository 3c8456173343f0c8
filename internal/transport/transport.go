// Package transport executes Esponce API requests over whatever HTTP facility
// the host provides.
//
// # Strategies
//
// Two interchangeable implementations satisfy [Transport]:
//
//   - [HTTPTransport]: net/http with the response body captured as raw bytes.
//     Used on every platform except js/wasm.
//   - FetchTransport: the browser's fetch API through syscall/js. Only built
//     for GOOS=js GOARCH=wasm.
//
// [Detect] picks one when the client is constructed. Callers never branch on
// the strategy afterwards; a custom Transport can be injected instead.
//
// # Errors
//
// A non-nil error from Do means the request did not complete at the HTTP
// level. HTTP error statuses are NOT errors here: they are returned as a
// normal [RawResponse] and interpreted by the caller. The fetch strategy may
// return a [*HostError] holding the status, headers and body the browser
// exposed before it failed.
package transport

import (
	"context"
	"fmt"
	"net/http"
)

// Request is a fully resolved request ready for dispatch.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// RawResponse is the unparsed HTTP response. Header lookups through
// Header.Get are case-insensitive.
type RawResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport executes a single HTTP request.
type Transport interface {
	// Do sends req and returns the raw response. It never retries.
	Do(ctx context.Context, req *Request) (*RawResponse, error)

	// Name returns the strategy name for logging: "http", "fetch", ...
	Name() string
}

// HostError describes a failure reported by a host-delegated facility,
// carrying whatever partial response the host exposed.
type HostError struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Err        error
}

func (e *HostError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("host request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("host request failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *HostError) Unwrap() error {
	return e.Err
}

// Partial returns the partial response as a RawResponse, or nil when the
// host exposed no status.
func (e *HostError) Partial() *RawResponse {
	if e.StatusCode == 0 {
		return nil
	}
	return &RawResponse{StatusCode: e.StatusCode, Header: e.Header, Body: e.Body}
}
