package transport

import (
	"context"
	"log/slog"
	"mime"
	"net/url"
	"strings"
	"time"

	"github.com/esponce/client-go/internal/logattr"
)

// redacted replaces the API key in logged URLs.
const redacted = "REDACTED"

// maxLoggedBody caps the request body text written to the log.
const maxLoggedBody = 4096

type loggingTransport struct {
	next   Transport
	logger *slog.Logger
}

// WithLogging wraps next so every request is logged at debug level before
// dispatch and its outcome after. Logging never changes what Do returns.
func WithLogging(next Transport, logger *slog.Logger) Transport {
	if logger == nil {
		return next
	}
	return &loggingTransport{next: next, logger: logger.With(logattr.Component("transport"))}
}

func (t *loggingTransport) Name() string { return t.next.Name() }

func (t *loggingTransport) Do(ctx context.Context, req *Request) (*RawResponse, error) {
	reqID := req.Header.Get("X-Request-Id")
	t.logger.DebugContext(ctx, "request",
		slog.String("strategy", t.next.Name()),
		slog.String("method", req.Method),
		slog.String("url", RedactURL(req.URL)),
		logattr.RequestID(reqID),
		logattr.Headers("headers", req.Header),
		slog.Int("body_size", len(req.Body)),
		bodyAttr(req),
	)

	start := time.Now()
	resp, err := t.next.Do(ctx, req)
	if err != nil {
		t.logger.DebugContext(ctx, "request failed",
			logattr.RequestID(reqID),
			logattr.Duration(time.Since(start)),
			logattr.Error(err),
		)
		return resp, err
	}

	t.logger.DebugContext(ctx, "response",
		logattr.RequestID(reqID),
		logattr.Status(resp.StatusCode),
		logattr.Duration(time.Since(start)),
		logattr.Headers("headers", resp.Header),
		slog.Int("body_size", len(resp.Body)),
	)
	return resp, nil
}

// bodyAttr logs JSON and text request bodies. Binary bodies are only
// reported by size.
func bodyAttr(req *Request) slog.Attr {
	if len(req.Body) == 0 || !isTextual(req.Header.Get("Content-Type")) {
		return slog.Attr{}
	}
	body := string(req.Body)
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody] + "...(truncated)"
	}
	return slog.String("body", body)
}

func isTextual(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch {
	case strings.HasPrefix(mt, "text/"):
		return true
	case mt == "application/json", mt == "application/xml", strings.HasSuffix(mt, "+json"), strings.HasSuffix(mt, "+xml"):
		return true
	}
	return false
}

// RedactURL hides the auth query parameter. Unparsable input is returned
// unchanged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Get("auth") == "" {
		return raw
	}
	q.Set("auth", redacted)
	u.RawQuery = q.Encode()
	return u.String()
}
