package esponce

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"reflect"
	"sync"

	"github.com/esponce/client-go/internal/api"
	"github.com/esponce/client-go/internal/apierrors"
	"github.com/esponce/client-go/internal/logattr"
	"github.com/esponce/client-go/internal/transport"
)

// Client is the Esponce API client. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client
	logger    *slog.Logger

	mu     sync.RWMutex
	apiKey string
}

// New creates a client from options. No request is made; the API key is
// checked on each call.
func New(opts ...Option) (*Client, error) {
	return NewClient(Config{BaseURL: DefaultBaseURL, Timeout: DefaultTimeout}, opts...)
}

// NewClient creates a client from cfg. opts are applied after cfg.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	cc := cfg.clientConfig()
	for _, opt := range opts {
		opt(cc)
	}
	return newClient(cc)
}

func newClient(cfg *clientConfig) (*Client, error) {
	if cfg.baseURL == "" {
		cfg.baseURL = DefaultBaseURL
	}
	if cfg.userAgent == "" {
		cfg.userAgent = DefaultUserAgent()
	}

	logger := cfg.logger
	if logger == nil {
		if cfg.verbose {
			logger = logattr.Verbose()
		} else {
			logger = logattr.Discard()
		}
	}

	t := cfg.transport
	if t == nil {
		httpClient := cfg.httpClient
		if httpClient == nil {
			timeout := cfg.timeout
			if timeout <= 0 {
				timeout = DefaultTimeout
			}
			httpClient = &http.Client{Timeout: timeout}
		}

		var err error
		t, err = transport.Detect(httpClient)
		if err != nil {
			return nil, err
		}
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:   cfg.baseURL,
		UserAgent: cfg.userAgent,
		Transport: transport.WithLogging(t, logger),
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("esponce client ready",
		logattr.Component("client"),
		slog.String("base_url", apiClient.BaseURL()),
		slog.String("transport", apiClient.TransportName()),
	)

	return &Client{
		apiClient: apiClient,
		logger:    logger,
		apiKey:    cfg.apiKey,
	}, nil
}

// APIKey returns the client's default API key.
func (c *Client) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// SetAPIKey replaces the client's default API key. Calls already in flight
// keep the key they started with.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

// BaseURL returns the normalized API base URL.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// TransportName returns the name of the transport strategy in use.
func (c *Client) TransportName() string {
	return c.apiClient.TransportName()
}

// key resolves the effective API key for one call.
func (c *Client) key(opts []CallOption) (string, error) {
	var cc callConfig
	for _, opt := range opts {
		opt(&cc)
	}
	key := cc.key
	if key == "" {
		key = c.APIKey()
	}
	if key == "" {
		return "", apierrors.Missing("auth", "API key is missing")
	}
	return key, nil
}

// invalid logs a validation failure and returns it.
func (c *Client) invalid(ctx context.Context, op string, err error) (*Result, error) {
	c.logger.ErrorContext(ctx, "esponce validation failed",
		logattr.Component("client"),
		slog.String("op", op),
		logattr.Error(err),
	)
	return nil, err
}

// isAbsent reports whether a request body carries nothing to send: nil, a
// nil pointer, map, slice or interface, or an empty []byte, string or
// json.RawMessage.
func isAbsent(body any) bool {
	switch b := body.(type) {
	case nil:
		return true
	case []byte:
		return len(b) == 0
	case json.RawMessage:
		return len(b) == 0
	case string:
		return b == ""
	}
	switch v := reflect.ValueOf(body); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Generate renders a QR Code. Depending on Format the result is text (svg,
// eps, xaml) or binary (png, jpg).
func (c *Client) Generate(ctx context.Context, params GenerateParams, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "generate", err)
	}
	if params.Content == "" {
		return c.invalid(ctx, "generate", apierrors.Missing("content", "content is missing"))
	}
	return c.apiClient.Generate(ctx, key, params.query())
}

// GenerateContent renders content as a QR Code with the service defaults.
func (c *Client) GenerateContent(ctx context.Context, content string, opts ...CallOption) (*Result, error) {
	return c.Generate(ctx, GenerateParams{Content: content}, opts...)
}

// Decode reads the content of a PNG QR Code image.
func (c *Client) Decode(ctx context.Context, image []byte, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "decode", err)
	}
	if len(image) == 0 {
		return c.invalid(ctx, "decode", apierrors.Missing("image", "image data is missing"))
	}
	return c.apiClient.Decode(ctx, key, image)
}

// List returns all campaigns and QR Codes of the account.
func (c *Client) List(ctx context.Context, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "list", err)
	}
	return c.apiClient.List(ctx, key)
}

// GetCampaign retrieves a campaign by id.
func (c *Client) GetCampaign(ctx context.Context, id string, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "get campaign", err)
	}
	if id == "" {
		return c.invalid(ctx, "get campaign", apierrors.Missing("id", "campaign id is missing"))
	}
	return c.apiClient.GetCampaign(ctx, key, id)
}

// CreateCampaign creates a campaign. body is sent as JSON; []byte, string
// and json.RawMessage are sent verbatim.
func (c *Client) CreateCampaign(ctx context.Context, body any, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "create campaign", err)
	}
	if isAbsent(body) {
		return c.invalid(ctx, "create campaign", apierrors.Missing("body", "campaign data is missing"))
	}
	return c.apiClient.CreateCampaign(ctx, key, body)
}

// UpdateCampaign replaces the campaign with the given id.
func (c *Client) UpdateCampaign(ctx context.Context, id string, body any, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "update campaign", err)
	}
	if id == "" {
		return c.invalid(ctx, "update campaign", apierrors.Missing("id", "campaign id is missing"))
	}
	if isAbsent(body) {
		return c.invalid(ctx, "update campaign", apierrors.Missing("body", "campaign data is missing"))
	}
	return c.apiClient.UpdateCampaign(ctx, key, id, body)
}

// DeleteCampaign deletes the campaign with the given id.
func (c *Client) DeleteCampaign(ctx context.Context, id string, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "delete campaign", err)
	}
	if id == "" {
		return c.invalid(ctx, "delete campaign", apierrors.Missing("id", "campaign id is missing"))
	}
	return c.apiClient.DeleteCampaign(ctx, key, id)
}

// GetQRCode retrieves a tracked QR Code by id.
func (c *Client) GetQRCode(ctx context.Context, id string, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "get qrcode", err)
	}
	if id == "" {
		return c.invalid(ctx, "get qrcode", apierrors.Missing("id", "QR Code id is missing"))
	}
	return c.apiClient.GetQRCode(ctx, key, id)
}

// CreateQRCode creates a tracked QR Code. body is encoded like CreateCampaign.
func (c *Client) CreateQRCode(ctx context.Context, body any, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "create qrcode", err)
	}
	if isAbsent(body) {
		return c.invalid(ctx, "create qrcode", apierrors.Missing("body", "QR Code data is missing"))
	}
	return c.apiClient.CreateQRCode(ctx, key, body)
}

// UpdateQRCode replaces the tracked QR Code with the given id.
func (c *Client) UpdateQRCode(ctx context.Context, id string, body any, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "update qrcode", err)
	}
	if id == "" {
		return c.invalid(ctx, "update qrcode", apierrors.Missing("id", "QR Code id is missing"))
	}
	if isAbsent(body) {
		return c.invalid(ctx, "update qrcode", apierrors.Missing("body", "QR Code data is missing"))
	}
	return c.apiClient.UpdateQRCode(ctx, key, id, body)
}

// DeleteQRCode deletes the tracked QR Code with the given id.
func (c *Client) DeleteQRCode(ctx context.Context, id string, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "delete qrcode", err)
	}
	if id == "" {
		return c.invalid(ctx, "delete qrcode", apierrors.Missing("id", "QR Code id is missing"))
	}
	return c.apiClient.DeleteQRCode(ctx, key, id)
}

// GetStatistics downloads the scan statistics of a QR Code.
func (c *Client) GetStatistics(ctx context.Context, id string, params StatisticsParams, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "get statistics", err)
	}
	if id == "" {
		return c.invalid(ctx, "get statistics", apierrors.Missing("id", "QR Code id is missing"))
	}
	format := params.Format
	if format == "" {
		format = DefaultStatisticsFormat
	}
	return c.apiClient.GetStatistics(ctx, key, id, format)
}

// Import uploads campaigns and QR Codes in bulk.
func (c *Client) Import(ctx context.Context, data []byte, params ImportParams, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "import", err)
	}
	if len(data) == 0 {
		return c.invalid(ctx, "import", apierrors.Missing("data", "import data is missing"))
	}
	if params.Format == "" {
		return c.invalid(ctx, "import", apierrors.Missing("format", "import format is missing"))
	}
	return c.apiClient.Import(ctx, key, params.Format, ImportMediaType(params.Format), data)
}

// Export downloads all campaigns and QR Codes.
func (c *Client) Export(ctx context.Context, params ExportParams, opts ...CallOption) (*Result, error) {
	key, err := c.key(opts)
	if err != nil {
		return c.invalid(ctx, "export", err)
	}
	if params.Format == "" {
		return c.invalid(ctx, "export", apierrors.Missing("format", "export format is missing"))
	}
	ext := params.Ext
	if ext == "" {
		ext = DefaultExportExt
	}
	return c.apiClient.Export(ctx, key, params.Format, ext)
}
