package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/leadgen"
)

// queryTemplate frames the caller's description as a Quora search.
const queryTemplate = "Quora discussions about %s"

// searchTimeoutMillis is the server-side timeout passed with each search.
const searchTimeoutMillis = 60000

// Ensure Client implements leadgen.URLDiscoverer at compile time.
var _ leadgen.URLDiscoverer = (*Client)(nil)

type searchRequest struct {
	Query    string `json:"query"`
	Limit    int    `json:"limit"`
	Lang     string `json:"lang"`
	Location string `json:"location"`
	Timeout  int    `json:"timeout"`
}

type searchResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Discover searches Firecrawl for Quora discussions matching the
// description and returns at most limit URLs in response order.
//
// Transport errors, non-2xx statuses, unparseable bodies and non-success
// responses all yield an empty slice with a nil error: from the caller's
// point of view they are indistinguishable from a search with no hits.
func (c *Client) Discover(ctx context.Context, description string, limit int) ([]string, error) {
	if strings.TrimSpace(description) == "" {
		return nil, leadgen.Errorf(leadgen.EINVALID, "description required")
	}
	if limit < 1 {
		return nil, leadgen.Errorf(leadgen.EINVALID, "limit must be positive, got %d", limit)
	}

	payload, err := json.Marshal(searchRequest{
		Query:    fmt.Sprintf(queryTemplate, description),
		Limit:    limit,
		Lang:     "en",
		Location: "United States",
		Timeout:  searchTimeoutMillis,
	})
	if err != nil {
		return nil, leadgen.Errorf(leadgen.EINTERNAL, "marshal search request: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/search", bytes.NewReader(payload))
	if err != nil {
		return nil, leadgen.Errorf(leadgen.EINTERNAL, "create search request: %s", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return []string{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []string{}, nil
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || !body.Success {
		return []string{}, nil
	}

	urls := make([]string, 0, limit)
	for _, result := range body.Data {
		if result.URL == "" {
			continue
		}
		urls = append(urls, result.URL)
		if len(urls) == limit {
			break
		}
	}

	return urls, nil
}
