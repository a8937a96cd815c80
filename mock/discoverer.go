package mock

import (
	"context"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.URLDiscoverer = (*URLDiscoverer)(nil)

// URLDiscoverer is a mock implementation of leadgen.URLDiscoverer.
type URLDiscoverer struct {
	DiscoverFn func(ctx context.Context, description string, limit int) ([]string, error)
}

func (d *URLDiscoverer) Discover(ctx context.Context, description string, limit int) ([]string, error) {
	return d.DiscoverFn(ctx, description, limit)
}
