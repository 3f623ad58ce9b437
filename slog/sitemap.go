package slog

import (
	"context"
	"log/slog"
	"time"

	vega "github.com/Manish787852/Vega-scraper"
)

// Ensure LoggingSitemapService implements vega.SitemapService.
var _ vega.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   vega.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next vega.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverDetailURLs delegates to the wrapped service and logs the
// operation.
func (s *LoggingSitemapService) DiscoverDetailURLs(ctx context.Context, baseURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverDetailURLs(ctx, baseURL)
}
