package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/leadgen"
)

// Ensure LoggingLeadExtractor implements leadgen.LeadExtractor.
var _ leadgen.LeadExtractor = (*LoggingLeadExtractor)(nil)

// LoggingLeadExtractor wraps a LeadExtractor with logging. The summary line
// includes the skipped-URL count, so "zero leads" and "all extractions
// failed" are distinguishable from the logs.
type LoggingLeadExtractor struct {
	next   leadgen.LeadExtractor
	logger *slog.Logger
}

// NewLoggingLeadExtractor creates a new LoggingLeadExtractor.
func NewLoggingLeadExtractor(next leadgen.LeadExtractor, logger *slog.Logger) *LoggingLeadExtractor {
	return &LoggingLeadExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, logging each skipped URL and
// a batch summary.
func (e *LoggingLeadExtractor) Extract(ctx context.Context, urls []string, progress leadgen.ExtractProgressFunc) (results []*leadgen.SourceResult, skipped int, err error) {
	defer func(begin time.Time) {
		e.logger.Info("lead extraction",
			"urls", len(urls),
			"sources", len(results),
			"skipped", skipped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	wrapped := func(p leadgen.ExtractProgress) {
		if p.Skipped {
			e.logger.Warn("extraction skipped",
				"url", p.URL,
				"reason", leadgen.ErrorMessage(p.Err),
			)
		}
		if progress != nil {
			progress(p)
		}
	}

	return e.next.Extract(ctx, urls, wrapped)
}
