package slog

import (
	"context"
	"log/slog"

	vega "github.com/Manish787852/Vega-scraper"
)

// Ensure LoggingSink implements vega.RecordSink.
var _ vega.RecordSink = (*LoggingSink)(nil)

// LoggingSink wraps a RecordSink with logging per appended record.
type LoggingSink struct {
	next   vega.RecordSink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next vega.RecordSink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

// Append delegates to the wrapped sink and logs the record.
func (s *LoggingSink) Append(ctx context.Context, rec vega.Record) (err error) {
	defer func() {
		s.logger.Info("record appended",
			"title", rec.Title,
			"quality", rec.Quality,
			"url", rec.URL,
			"err", err,
		)
	}()
	return s.next.Append(ctx, rec)
}
