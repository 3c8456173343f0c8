package esponce

import (
	"fmt"
	"runtime"
)

// Version is the client library version reported in the User-Agent header.
const Version = "1.0.0"

// DefaultUserAgent returns the User-Agent sent when none is configured.
func DefaultUserAgent() string {
	return fmt.Sprintf("Esponce/%s (Go; %s/%s)", Version, runtime.GOOS, runtime.GOARCH)
}
