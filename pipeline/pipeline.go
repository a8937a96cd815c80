// Package pipeline orchestrates a lead-generation run.
// It composes URL discovery, per-URL extraction, flattening, and export
// into a single pass: discovery feeds extraction, extraction feeds the
// flattener, and the flattened rows feed both export sinks. No stage calls
// back into an earlier one, and a fault local to one URL or one sink never
// aborts the run.
package pipeline

import (
	"context"
	"strings"

	"github.com/fwojciec/leadgen"
	"github.com/google/uuid"
)

// DefaultLimit is the discovered-URL bound when none is configured.
const DefaultLimit = 3

// MaxLimit caps the discovered-URL bound.
const MaxLimit = 10

// Runner executes lead-generation runs. Sheets is optional; when nil the
// spreadsheet sink is disabled and only the tabular file is written.
type Runner struct {
	Discoverer leadgen.URLDiscoverer
	Extractor  leadgen.LeadExtractor
	Rows       leadgen.RowWriter
	Sheets     leadgen.SheetPublisher
	Limit      int
}

// Result holds the outcome of one run. The two sink outcomes are recorded
// independently: a failed sink sets its error field without affecting the
// other sink or the run itself.
type Result struct {
	RunID   string
	URLs    []string
	Sources int
	Rows    int

	// Skipped counts URLs whose extraction did not reach completed-success.
	// It distinguishes "zero leads" from "all extractions failed".
	Skipped int

	CSVPath string
	CSVErr  error

	SheetURL string
	SheetErr error
}

// NoLeads reports whether discovery found nothing to work with.
func (r *Result) NoLeads() bool {
	return len(r.URLs) == 0
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressDiscovered ProgressType = iota
	ProgressExtracted
	ProgressSkipped
	ProgressFinished
)

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Completed int
	Total     int
	Err       error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run executes one lead-generation run for the description and returns its
// Result. The run stops early, with zero rows and no exports, when
// discovery finds no URLs. The returned error is non-nil only for invalid
// input, missing wiring, or context cancellation; collaborator faults are
// absorbed per stage as documented on the collaborator interfaces.
func (r *Runner) Run(ctx context.Context, description string, progress ProgressFunc) (*Result, error) {
	if strings.TrimSpace(description) == "" {
		return nil, leadgen.Errorf(leadgen.EINVALID, "description required")
	}
	if r.Discoverer == nil || r.Extractor == nil || r.Rows == nil {
		return nil, leadgen.Errorf(leadgen.EINTERNAL, "pipeline runner not fully wired")
	}

	limit := r.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		return nil, leadgen.Errorf(leadgen.EINVALID, "limit must be between 1 and %d, got %d", MaxLimit, limit)
	}

	result := &Result{RunID: uuid.NewString()}

	urls, err := r.Discoverer.Discover(ctx, description, limit)
	if err != nil {
		return nil, err
	}
	result.URLs = urls

	if progress != nil {
		progress(ProgressEvent{Type: ProgressDiscovered, Total: len(urls)})
	}

	if len(urls) == 0 {
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFinished})
		}
		return result, nil
	}

	sources, skipped, err := r.Extractor.Extract(ctx, urls, func(p leadgen.ExtractProgress) {
		if progress == nil {
			return
		}
		event := ProgressEvent{
			Type:      ProgressExtracted,
			URL:       p.URL,
			Completed: p.Completed,
			Total:     p.Total,
			Err:       p.Err,
		}
		if p.Skipped {
			event.Type = ProgressSkipped
		}
		progress(event)
	})
	if err != nil {
		return nil, err
	}
	result.Sources = len(sources)
	result.Skipped = skipped

	rows := leadgen.Flatten(sources)
	result.Rows = len(rows)

	if path, err := r.Rows.WriteRows(ctx, rows); err != nil {
		result.CSVErr = err
	} else {
		result.CSVPath = path
	}

	if r.Sheets != nil && len(rows) > 0 {
		if sheetURL, err := r.Sheets.Publish(ctx, rows); err != nil {
			result.SheetErr = err
		} else {
			result.SheetURL = sheetURL
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(urls), Total: len(urls)})
	}

	return result, nil
}
