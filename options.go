package hathora

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type options struct {
	apiKey     string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
	endpoints  map[string]string
}

// Option customizes client construction.
type Option func(*options)

// WithAPIKey sets the API key explicitly, taking precedence over config and
// the HATHORA_API_KEY environment variable.
func WithAPIKey(key string) Option {
	return func(o *options) { o.apiKey = key }
}

// WithHTTPClient supplies the HTTP client used for all requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTimeout sets the per-request timeout. Ignored when WithHTTPClient is
// also given.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger attaches a zap logger; without one the SDK stays silent.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.logger = log }
}

// WithEndpoint overrides the endpoint of one built-in model, keyed by model
// key (e.g. "kokoro").
func WithEndpoint(modelKey, endpoint string) Option {
	return func(o *options) {
		if o.endpoints == nil {
			o.endpoints = make(map[string]string)
		}
		o.endpoints[modelKey] = endpoint
	}
}
