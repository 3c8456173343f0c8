package esponce

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/esponce/client-go/internal/transport"
)

const (
	// DefaultBaseURL is the public Esponce API origin.
	DefaultBaseURL = "https://www.esponce.com/"
	// DefaultTimeout bounds each request made through the default HTTP client.
	DefaultTimeout = transport.DefaultTimeout
)

// Transport executes raw requests. Implementations can be injected with
// WithTransport, e.g. to record traffic in tests.
type Transport = transport.Transport

// Request is the serialized request handed to a Transport.
type Request = transport.Request

// RawResponse is what a Transport returns before normalization.
type RawResponse = transport.RawResponse

// Config is the struct form of the client settings. The env tags are read
// by LoadConfig.
type Config struct {
	APIKey    string        `env:"ESPONCE_API_KEY" yaml:"api_key"`
	BaseURL   string        `env:"ESPONCE_URL" envDefault:"https://www.esponce.com/" yaml:"base_url"`
	UserAgent string        `env:"ESPONCE_USER_AGENT" yaml:"user_agent"`
	Verbose   bool          `env:"ESPONCE_VERBOSE" yaml:"verbose"`
	Timeout   time.Duration `env:"ESPONCE_TIMEOUT" envDefault:"30s" yaml:"timeout"`
}

// clientConfig holds configuration for the client.
type clientConfig struct {
	apiKey     string
	baseURL    string
	userAgent  string
	verbose    bool
	timeout    time.Duration
	logger     *slog.Logger
	httpClient *http.Client
	transport  Transport
}

func (c Config) clientConfig() *clientConfig {
	return &clientConfig{
		apiKey:    c.APIKey,
		baseURL:   c.BaseURL,
		userAgent: c.UserAgent,
		verbose:   c.Verbose,
		timeout:   c.Timeout,
	}
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIKey sets the default API key. Calls can override it with WithKey.
func WithAPIKey(key string) Option {
	return func(c *clientConfig) {
		c.apiKey = key
	}
}

// WithBaseURL sets the API base URL. It must be absolute.
// Default: https://www.esponce.com/
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithVerbose logs requests, responses and errors to stderr at debug level.
// Ignored when WithLogger is also given.
func WithVerbose(verbose bool) Option {
	return func(c *clientConfig) {
		c.verbose = verbose
	}
}

// WithLogger sends client logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client for the direct transport.
// WithTimeout does not apply to it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client.
// Default: 30 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithTransport replaces transport detection with t.
func WithTransport(t Transport) Option {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// CallOption configures a single call.
type CallOption func(*callConfig)

type callConfig struct {
	key string
}

// WithKey uses key for this call instead of the client's API key.
// An empty key is ignored.
func WithKey(key string) CallOption {
	return func(c *callConfig) {
		c.key = key
	}
}
