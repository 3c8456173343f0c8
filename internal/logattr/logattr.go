// Package logattr provides slog attribute constructors shared by the client
// packages so log records use the same keys everywhere.
package logattr

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Verbose returns a debug-level text logger writing to stderr.
func Verbose() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the key "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Status records an HTTP status code under the key "status".
func Status(code int) slog.Attr {
	return slog.Int("status", code)
}

// Headers groups request or response headers under name, one attribute per
// header. Multi-valued headers are logged as a list.
func Headers(name string, h http.Header) slog.Attr {
	attrs := make([]slog.Attr, 0, len(h))
	for k, vv := range h {
		switch len(vv) {
		case 0:
			continue
		case 1:
			attrs = append(attrs, slog.String(k, vv[0]))
		default:
			attrs = append(attrs, slog.Any(k, vv))
		}
	}
	return Group(name, attrs...)
}
