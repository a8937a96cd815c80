package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/fwojciec/leadgen"
	"golang.org/x/sync/errgroup"
)

// extractPrompt is the fixed instruction sent with every extraction.
const extractPrompt = "Extract usernames, bios, post types, timestamps, upvotes, and links."

// statusCompleted is the only extraction status accepted as final.
const statusCompleted = "completed"

// pageSchema is the record shape the extraction service is asked to fill:
// a page object holding a list of user interactions.
var pageSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"interactions": map[string]any{
			"type":        "array",
			"description": "List of user interactions on the page",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"username":  map[string]any{"type": "string", "description": "Username of the person who posted"},
					"bio":       map[string]any{"type": "string", "description": "User's bio"},
					"post_type": map[string]any{"type": "string", "description": "Type of post ('question' or 'answer')"},
					"timestamp": map[string]any{"type": "string", "description": "Time of posting"},
					"upvotes":   map[string]any{"type": "integer", "description": "Number of upvotes"},
					"links": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Any links in the post",
					},
				},
			},
		},
	},
	"required": []string{"interactions"},
}

// Ensure Client implements leadgen.LeadExtractor at compile time.
var _ leadgen.LeadExtractor = (*Client)(nil)

type extractRequest struct {
	URLs   []string       `json:"urls"`
	Prompt string         `json:"prompt"`
	Schema map[string]any `json:"schema"`
}

type extractResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Data    struct {
		Interactions []interactionPayload `json:"interactions"`
	} `json:"data"`
}

// interactionPayload is the wire form of one interaction. The extraction
// service fills fields best-effort, so everything is optional and upvotes
// may arrive as a number, a numeric string, or not at all.
type interactionPayload struct {
	Username  string          `json:"username"`
	Bio       string          `json:"bio"`
	PostType  string          `json:"post_type"`
	Timestamp string          `json:"timestamp"`
	Upvotes   json.RawMessage `json:"upvotes"`
	Links     []string        `json:"links"`
}

func (p interactionPayload) toInteraction() leadgen.Interaction {
	links := p.Links
	if links == nil {
		links = []string{}
	}
	return leadgen.Interaction{
		Username:  p.Username,
		Bio:       p.Bio,
		PostType:  p.PostType,
		Timestamp: p.Timestamp,
		Upvotes:   coerceUpvotes(p.Upvotes),
		Links:     links,
	}
}

// coerceUpvotes reads an upvote count from whatever the extraction service
// produced. Missing, non-numeric and negative values all coerce to 0.
func coerceUpvotes(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return 0
		}
		return int(n)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 {
			return n
		}
	}

	return 0
}

// extractOutcome holds the result of extracting a single URL.
type extractOutcome struct {
	position int
	url      string
	result   *leadgen.SourceResult
	err      error
}

// Extract runs a schema-constrained extraction for each URL and returns one
// SourceResult per URL that reached completed-success, in input URL order,
// plus the count of URLs that were skipped.
//
// URLs are extracted concurrently up to the configured limit; they share no
// state, so only the final reassembly has to care about order. A URL whose
// extraction fails in any way is skipped and the batch continues.
func (c *Client) Extract(ctx context.Context, urls []string, progress leadgen.ExtractProgressFunc) ([]*leadgen.SourceResult, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if len(urls) == 0 {
		return []*leadgen.SourceResult{}, 0, nil
	}

	concurrency := c.concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan extractOutcome, len(urls))

	var completed atomic.Int64
	total := len(urls)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			g.Go(func() error {
				result, err := c.extractOne(gctx, url)
				resultCh <- extractOutcome{position: i, url: url, result: result, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in input order regardless of completion order.
	outcomes := make([]extractOutcome, len(urls))
	for outcome := range resultCh {
		completed.Add(1)
		outcomes[outcome.position] = outcome

		if progress != nil {
			progress(leadgen.ExtractProgress{
				URL:       outcome.url,
				Completed: int(completed.Load()),
				Total:     total,
				Skipped:   outcome.err != nil,
				Err:       outcome.err,
			})
		}
	}

	results := make([]*leadgen.SourceResult, 0, len(urls))
	var skipped int
	for _, outcome := range outcomes {
		if outcome.err != nil {
			skipped++
			continue
		}
		results = append(results, outcome.result)
	}

	return results, skipped, nil
}

// extractOne runs one extraction call. The returned error is a skip reason,
// never surfaced past Extract except through progress events.
func (c *Client) extractOne(ctx context.Context, url string) (*leadgen.SourceResult, error) {
	payload, err := json.Marshal(extractRequest{
		URLs:   []string{url},
		Prompt: extractPrompt,
		Schema: pageSchema,
	})
	if err != nil {
		return nil, leadgen.Errorf(leadgen.EINTERNAL, "marshal extract request: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/extract", bytes.NewReader(payload))
	if err != nil {
		return nil, leadgen.Errorf(leadgen.EINTERNAL, "create extract request: %s", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, leadgen.Errorf(leadgen.EUNAVAILABLE, "extraction HTTP %d for %s", resp.StatusCode, url)
	}

	var body extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, leadgen.Errorf(leadgen.EUNAVAILABLE, "malformed extraction response for %s: %s", url, err)
	}

	if !body.Success || body.Status != statusCompleted {
		return nil, leadgen.Errorf(leadgen.EUNAVAILABLE, "extraction not completed for %s: status=%q", url, body.Status)
	}

	interactions := make([]leadgen.Interaction, 0, len(body.Data.Interactions))
	for _, p := range body.Data.Interactions {
		interactions = append(interactions, p.toInteraction())
	}

	return &leadgen.SourceResult{URL: url, Interactions: interactions}, nil
}
