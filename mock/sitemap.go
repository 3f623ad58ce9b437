package mock

import (
	"context"

	vega "github.com/Manish787852/Vega-scraper"
)

var _ vega.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of vega.SitemapService.
type SitemapService struct {
	DiscoverDetailURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverDetailURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverDetailURLsFn(ctx, baseURL)
}
