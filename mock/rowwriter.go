package mock

import (
	"context"

	"github.com/fwojciec/leadgen"
)

var _ leadgen.RowWriter = (*RowWriter)(nil)

// RowWriter is a mock implementation of leadgen.RowWriter.
type RowWriter struct {
	WriteRowsFn func(ctx context.Context, rows []leadgen.FlatRow) (string, error)
}

func (w *RowWriter) WriteRows(ctx context.Context, rows []leadgen.FlatRow) (string, error) {
	return w.WriteRowsFn(ctx, rows)
}
