// Package slog provides logging decorators for the collaborator interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/leadgen"
)

// Ensure LoggingURLDiscoverer implements leadgen.URLDiscoverer.
var _ leadgen.URLDiscoverer = (*LoggingURLDiscoverer)(nil)

// LoggingURLDiscoverer wraps a URLDiscoverer with logging.
type LoggingURLDiscoverer struct {
	next   leadgen.URLDiscoverer
	logger *slog.Logger
}

// NewLoggingURLDiscoverer creates a new LoggingURLDiscoverer.
func NewLoggingURLDiscoverer(next leadgen.URLDiscoverer, logger *slog.Logger) *LoggingURLDiscoverer {
	return &LoggingURLDiscoverer{next: next, logger: logger}
}

// Discover delegates to the wrapped discoverer and logs the operation.
func (d *LoggingURLDiscoverer) Discover(ctx context.Context, description string, limit int) (urls []string, err error) {
	defer func(begin time.Time) {
		d.logger.Info("url discovery",
			"description", description,
			"limit", limit,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Discover(ctx, description, limit)
}
