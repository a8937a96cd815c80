package leadgen

import "context"

// ExtractProgress reports progress during per-URL extraction.
type ExtractProgress struct {
	URL       string
	Completed int
	Total     int

	// Skipped is true when the URL's extraction did not reach
	// completed-success state and was excluded from the results.
	Skipped bool
	Err     error
}

// ExtractProgressFunc is called as URLs are processed.
type ExtractProgressFunc func(ExtractProgress)

// LeadExtractor extracts interaction records from source pages.
type LeadExtractor interface {
	// Extract runs a schema-constrained extraction for each URL and returns
	// one SourceResult per URL that completed, in input URL order, along
	// with the number of URLs that were skipped. A URL whose extraction
	// fails or does not complete is skipped without error; the batch
	// continues. The progress callback, if non-nil, receives an event per
	// URL as extraction proceeds.
	Extract(ctx context.Context, urls []string, progress ExtractProgressFunc) (results []*SourceResult, skipped int, err error)
}
