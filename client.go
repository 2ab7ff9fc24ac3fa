package hathora

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hathora/hathora-go/internal/config"
	"github.com/hathora/hathora-go/pkg/registry"
)

// Client is the entry point to the Hathora Voice AI API. Construct it once
// with New; it is safe for concurrent use.
type Client struct {
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
	registry   *registry.Registry

	SpeechToText *SpeechToText
	TextToSpeech *TextToSpeech
	LLM          *LLM
}

// New builds a client. Configuration is resolved from hathora.yaml and
// HATHORA_* environment variables, then overridden by options; the API key
// may come from either and is only required by the backends, not by
// construction.
func New(opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	endpoints := make(map[string]string, len(cfg.Endpoints)+len(o.endpoints))
	for k, v := range cfg.Endpoints {
		endpoints[k] = v
	}
	for k, v := range o.endpoints {
		endpoints[k] = v
	}

	reg, err := registry.Builtin(endpoints)
	if err != nil {
		return nil, err
	}

	apiKey := o.apiKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}

	log := o.logger
	if log == nil {
		log = zap.NewNop()
	}

	httpClient := o.httpClient
	if httpClient == nil {
		timeout := o.timeout
		if timeout == 0 {
			timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		apiKey:     apiKey,
		httpClient: httpClient,
		log:        log,
		registry:   reg,
	}
	c.SpeechToText = &SpeechToText{client: c}
	c.TextToSpeech = &TextToSpeech{client: c}
	c.LLM = &LLM{client: c}
	return c, nil
}

// Registry exposes the model table for lookup, listing and help
// introspection.
func (c *Client) Registry() *registry.Registry {
	return c.registry
}
