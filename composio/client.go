// Package composio provides a client for executing Composio tool actions,
// used here to create Google Sheets from structured row data.
package composio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/leadgen"
)

// DefaultBaseURL is the production Composio API endpoint.
const DefaultBaseURL = "https://backend.composio.dev"

// DefaultTimeout bounds each action execution call.
const DefaultTimeout = 60 * time.Second

// ActionSheetFromJSON creates a Google Sheet from a JSON row set.
const ActionSheetFromJSON = "GOOGLESHEETS_SHEET_FROM_JSON"

// Client executes Composio actions over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	timeout time.Duration
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

// NewClient creates a Composio client authenticated with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}

	return c
}

type executeRequest struct {
	Input map[string]any `json:"input"`
}

type executeResponse struct {
	Successful bool            `json:"successful"`
	Error      string          `json:"error"`
	Data       json.RawMessage `json:"data"`
}

// ExecuteAction runs the named action with the given input and returns the
// action's data payload as a JSON string.
func (c *Client) ExecuteAction(ctx context.Context, action string, input map[string]any) (string, error) {
	if action == "" {
		return "", leadgen.Errorf(leadgen.EINVALID, "action name required")
	}

	payload, err := json.Marshal(executeRequest{Input: input})
	if err != nil {
		return "", leadgen.Errorf(leadgen.EINTERNAL, "marshal action input: %s", err)
	}

	url := fmt.Sprintf("%s/api/v2/actions/%s/execute", c.baseURL, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", leadgen.Errorf(leadgen.EINTERNAL, "create action request: %s", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", leadgen.Errorf(leadgen.EUNAVAILABLE, "execute %s: %s", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", leadgen.Errorf(leadgen.EUNAVAILABLE, "execute %s: HTTP %d", action, resp.StatusCode)
	}

	var body executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", leadgen.Errorf(leadgen.EUNAVAILABLE, "execute %s: malformed response: %s", action, err)
	}

	if !body.Successful {
		msg := body.Error
		if msg == "" {
			msg = "action reported failure"
		}
		return "", leadgen.Errorf(leadgen.EUNAVAILABLE, "execute %s: %s", action, msg)
	}

	return string(body.Data), nil
}
