// Package slog provides logging decorators for the persistence
// interfaces, in addition to the renderer decorator living in the rod
// package.
package slog

import (
	"context"
	"log/slog"
	"time"

	vega "github.com/Manish787852/Vega-scraper"
)

// Ensure LoggingLedger implements vega.Ledger.
var _ vega.Ledger = (*LoggingLedger)(nil)

// LoggingLedger wraps a Ledger with debug logging on marks. Reads are hot
// and uninteresting, so IsProcessed delegates silently.
type LoggingLedger struct {
	next   vega.Ledger
	logger *slog.Logger
}

// NewLoggingLedger creates a new LoggingLedger.
func NewLoggingLedger(next vega.Ledger, logger *slog.Logger) *LoggingLedger {
	return &LoggingLedger{next: next, logger: logger}
}

// IsProcessed delegates to the wrapped ledger.
func (l *LoggingLedger) IsProcessed(url string) bool {
	return l.next.IsProcessed(url)
}

// MarkProcessed delegates to the wrapped ledger and logs the mark.
func (l *LoggingLedger) MarkProcessed(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		l.logger.Debug("ledger mark",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.MarkProcessed(ctx, url)
}
