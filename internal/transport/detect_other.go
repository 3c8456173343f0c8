//go:build !(js && wasm)

package transport

import "net/http"

// Detect returns the transport for this platform. Outside the browser that
// is always the direct net/http strategy.
func Detect(client *http.Client) (Transport, error) {
	return NewHTTPTransport(client), nil
}
