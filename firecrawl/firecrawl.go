// Package firecrawl provides Firecrawl-API-backed implementations of
// leadgen.URLDiscoverer and leadgen.LeadExtractor. Search finds candidate
// discussion URLs; extract runs a schema-constrained extraction per URL on
// the Firecrawl side, so this package never handles raw page HTML.
package firecrawl

import (
	"net/http"
	"time"
)

// DefaultBaseURL is the production Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// DefaultTimeout bounds each API call. Extraction jobs can take a while,
// so this is deliberately generous.
const DefaultTimeout = 90 * time.Second

// DefaultConcurrency is the extraction fan-out limit.
const DefaultConcurrency = 5

// Client talks to the Firecrawl API.
type Client struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	timeout     time.Duration
	concurrency int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithTimeout sets the per-call timeout.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithConcurrency sets the extraction fan-out limit.
// Defaults to DefaultConcurrency if not specified.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		c.concurrency = n
	}
}

// NewClient creates a Firecrawl API client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		apiKey:      apiKey,
		timeout:     DefaultTimeout,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}

	return c
}
