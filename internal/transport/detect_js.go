//go:build js && wasm

package transport

import (
	"fmt"
	"net/http"
	"syscall/js"

	"github.com/esponce/client-go/internal/apierrors"
)

// Detect returns the fetch strategy when the host exposes a global fetch
// function and fails fast otherwise. The http.Client is unused in the
// browser.
func Detect(_ *http.Client) (Transport, error) {
	fetch := js.Global().Get("fetch")
	if fetch.Type() != js.TypeFunction {
		return nil, fmt.Errorf("%w: global fetch is %s; run in a browser or a runtime with fetch support",
			apierrors.ErrNoTransport, fetch.Type())
	}
	return NewFetchTransport(fetch), nil
}
