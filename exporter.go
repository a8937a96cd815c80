package leadgen

import "context"

// RowWriter serializes flat rows to a local tabular file.
type RowWriter interface {
	// WriteRows writes the full row sequence, in order, under the fixed
	// ExportColumns header. The header is written even when rows is empty.
	// Any prior file at the destination is overwritten. Returns the path
	// of the written file.
	WriteRows(ctx context.Context, rows []FlatRow) (path string, err error)
}

// SheetPublisher publishes flat rows to a remote spreadsheet.
type SheetPublisher interface {
	// Publish hands the full row set to the spreadsheet collaborator and
	// returns the locator of the created sheet. A collaborator failure or
	// a response without a recognizable locator is an error with code
	// EUNAVAILABLE; callers treat it as a failed sink, not a fatal fault.
	Publish(ctx context.Context, rows []FlatRow) (sheetURL string, err error)
}
