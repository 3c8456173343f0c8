package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/esponce/client-go/internal/apierrors"
	"github.com/esponce/client-go/internal/logattr"
	"github.com/esponce/client-go/internal/query"
	"github.com/esponce/client-go/internal/transport"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// Config holds the settings for NewClient.
type Config struct {
	// BaseURL is the absolute API origin, e.g. https://www.esponce.com/.
	BaseURL string
	// UserAgent is sent on every request.
	UserAgent string
	// Transport executes requests. Required.
	Transport transport.Transport
	// Logger receives error records. Nil discards them.
	Logger *slog.Logger
	// NewRequestID generates X-Request-ID values. Defaults to UUIDv4.
	NewRequestID func() string
}

// Client builds requests for Esponce routes and normalizes the responses.
type Client struct {
	baseURL      string
	userAgent    string
	transport    transport.Transport
	logger       *slog.Logger
	newRequestID func() string
}

// NewClient validates cfg and creates a Client.
func NewClient(cfg Config) (*Client, error) {
	base, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.Transport == nil {
		return nil, fmt.Errorf("%w: transport is required", apierrors.ErrInvalidConfig)
	}

	c := &Client{
		baseURL:      base,
		userAgent:    cfg.UserAgent,
		transport:    cfg.Transport,
		logger:       cfg.Logger,
		newRequestID: cfg.NewRequestID,
	}
	if c.logger == nil {
		c.logger = logattr.Discard()
	}
	if c.newRequestID == nil {
		c.newRequestID = uuid.NewString
	}
	return c, nil
}

// normalizeBaseURL requires an absolute URL and guarantees a trailing slash
// so routes can be appended.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: base URL is required", apierrors.ErrInvalidConfig)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: parse base URL: %v", apierrors.ErrInvalidConfig, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: base URL %q must be absolute", apierrors.ErrInvalidConfig, raw)
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return raw, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TransportName returns the name of the active transport strategy.
func (c *Client) TransportName() string {
	return c.transport.Name()
}

// Call describes one API request before serialization.
type Call struct {
	Method string
	Route  string
	Query  query.Params
	Header http.Header
	// Body is sent verbatim for []byte, string, json.RawMessage and
	// io.Reader; anything else is encoded as JSON.
	Body any
}

// Do executes call and normalizes the outcome. Exactly one of the return
// values is non-nil.
func (c *Client) Do(ctx context.Context, call Call) (*Envelope, error) {
	req, err := c.newRequest(call)
	if err != nil {
		c.logError(ctx, call.Method, call.Route, "", err)
		return nil, err
	}

	raw, err := c.transport.Do(ctx, req)
	env, err := Normalize(raw, err)
	if err != nil {
		reqID := req.Header.Get(HeaderRequestID)
		err = annotate(err, req, reqID)
		c.logError(ctx, req.Method, transport.RedactURL(req.URL), reqID, err)
		return nil, err
	}
	return env, nil
}

func (c *Client) newRequest(call Call) (*transport.Request, error) {
	body, err := encodeBody(call.Body)
	if err != nil {
		return nil, err
	}

	header := make(http.Header)
	header.Set("Accept", "application/json")
	if c.userAgent != "" {
		header.Set("User-Agent", c.userAgent)
	}
	header.Set(HeaderRequestID, c.newRequestID())
	for k, vv := range call.Header {
		header.Del(k)
		for _, v := range vv {
			header.Add(k, v)
		}
	}

	method := call.Method
	if method == "" {
		method = http.MethodGet
	}

	return &transport.Request{
		Method: method,
		URL:    c.baseURL + strings.TrimPrefix(call.Route, "/") + call.Query.Encode(),
		Header: header,
		Body:   body,
	}, nil
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	case json.RawMessage:
		return b, nil
	case io.Reader:
		data, err := io.ReadAll(b)
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		return data, nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, &apierrors.ValidationError{Field: "body", Message: fmt.Sprintf("cannot encode as JSON: %v", err)}
		}
		return data, nil
	}
}

// annotate fills request details the normalizer cannot know.
func annotate(err error, req *transport.Request, reqID string) error {
	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		netErr.Method = req.Method
		netErr.URL = transport.RedactURL(req.URL)
	}
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) && apiErr.RequestID == "" {
		apiErr.RequestID = reqID
	}
	return err
}

func (c *Client) logError(ctx context.Context, method, target, reqID string, err error) {
	c.logger.ErrorContext(ctx, "esponce request failed",
		logattr.Component("api"),
		slog.String("method", method),
		slog.String("url", target),
		logattr.RequestID(reqID),
		logattr.Error(err),
	)
}
