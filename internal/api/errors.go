package api

import (
	"errors"
	"net/http"

	"github.com/esponce/client-go/internal/apierrors"
	"github.com/esponce/client-go/internal/transport"
)

var errNoResponse = errors.New("transport returned no response")

// transportError wraps a transport failure. A host failure that still
// exposed an error status is reported as an API error so callers see the
// same shape whichever strategy ran.
func transportError(err error) error {
	var hostErr *transport.HostError
	if errors.As(err, &hostErr) {
		if partial := hostErr.Partial(); partial != nil && partial.StatusCode >= http.StatusBadRequest {
			return statusError(partial)
		}
	}
	return &apierrors.NetworkError{Err: err}
}

func statusError(raw *transport.RawResponse) error {
	return apierrors.FromResponse(raw.StatusCode, raw.Header)
}
