package vega

import "context"

// SitemapService discovers detail-page URLs from a site's sitemap. It is an
// alternate discovery source for catalogs whose listing pages fail to render
// or paginate unreliably.
type SitemapService interface {
	// DiscoverDetailURLs returns candidate detail URLs found in the site's
	// sitemaps. Returns an empty slice (not nil) when no sitemap exists.
	DiscoverDetailURLs(ctx context.Context, baseURL string) ([]string, error)
}
