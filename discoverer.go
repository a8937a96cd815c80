package leadgen

import "context"

// URLDiscoverer turns a business description into candidate source URLs.
type URLDiscoverer interface {
	// Discover searches for discussion threads matching the description and
	// returns at most limit URLs in the order the search service ranked
	// them. A search that fails in transport, returns a non-success status,
	// or produces an unparseable body is a recoverable "no leads found"
	// outcome: Discover returns an empty slice and a nil error. An error is
	// returned only for invalid arguments.
	Discover(ctx context.Context, description string, limit int) ([]string, error)
}
