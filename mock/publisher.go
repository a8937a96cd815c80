package mock

import (
	"context"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.SheetPublisher = (*SheetPublisher)(nil)

// SheetPublisher is a mock implementation of leadgen.SheetPublisher.
type SheetPublisher struct {
	PublishFn func(ctx context.Context, rows []leadgen.FlatRow) (string, error)
}

func (p *SheetPublisher) Publish(ctx context.Context, rows []leadgen.FlatRow) (string, error) {
	return p.PublishFn(ctx, rows)
}
