package mock

import (
	"context"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.LeadExtractor = (*LeadExtractor)(nil)

// LeadExtractor is a mock implementation of leadgen.LeadExtractor.
type LeadExtractor struct {
	ExtractFn func(ctx context.Context, urls []string, progress leadgen.ExtractProgressFunc) ([]*leadgen.SourceResult, int, error)
}

func (e *LeadExtractor) Extract(ctx context.Context, urls []string, progress leadgen.ExtractProgressFunc) ([]*leadgen.SourceResult, int, error) {
	return e.ExtractFn(ctx, urls, progress)
}
