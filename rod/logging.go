package rod

import (
	"context"
	"log/slog"
	"time"

	vega "github.com/Manish787852/Vega-scraper"
)

// Ensure LoggingRenderer implements vega.InteractiveRenderer.
var _ vega.InteractiveRenderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps an InteractiveRenderer with debug logging.
type LoggingRenderer struct {
	next   vega.InteractiveRenderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next vega.InteractiveRenderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render logs the URL being rendered and delegates to the wrapped renderer.
func (r *LoggingRenderer) Render(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(ctx, url)
}

// RenderInteractive logs the bypass attempt and delegates to the wrapped
// renderer.
func (r *LoggingRenderer) RenderInteractive(ctx context.Context, url string, opts vega.Interaction) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render interactive",
			"url", url,
			"bytes", len(html),
			"max_clicks", opts.MaxClicks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderInteractive(ctx, url, opts)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}
