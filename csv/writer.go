// Package csv provides a file-based implementation of leadgen.RowWriter
// that serializes flat rows as a UTF-8, comma-separated file.
package csv

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/fwojciec/leadgen"
)

// Ensure Writer implements leadgen.RowWriter at compile time.
var _ leadgen.RowWriter = (*Writer)(nil)

// Writer writes flat rows to a single CSV file. Each write replaces the
// file wholesale; there is no append mode or versioning.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRows writes the header and all rows, in order, to the target file,
// overwriting any prior contents. The header is written even when rows is
// empty. Returns the path of the written file.
func (w *Writer) WriteRows(ctx context.Context, rows []leadgen.FlatRow) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if w.path == "" {
		return "", leadgen.Errorf(leadgen.EINVALID, "output path required")
	}

	f, err := os.Create(w.path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(leadgen.ExportColumns); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := cw.Write(row.Fields()); err != nil {
			return "", err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}

	if err := f.Close(); err != nil {
		return "", err
	}

	return w.path, nil
}
