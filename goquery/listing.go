package goquery

import (
	"net/url"
	"strings"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/PuerkitoBio/goquery"
)

// Compile-time interface verification.
var _ vega.ListingExtractor = (*ListingExtractor)(nil)

// listingSelectors locate post-title anchors on listing pages, in
// preference order. The target sites use h3.entry-title; the h2 variant
// shows up on older themes.
var listingSelectors = []string{
	"h3.entry-title a[href]",
	"h2.entry-title a[href]",
}

// ListingExtractor pulls detail-page URLs out of rendered listing pages.
type ListingExtractor struct{}

// NewListingExtractor creates a new ListingExtractor.
func NewListingExtractor() *ListingExtractor {
	return &ListingExtractor{}
}

// DetailURLs returns absolute detail URLs in document order, deduplicated.
func (e *ListingExtractor) DetailURLs(html string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, vega.Errorf(vega.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vega.Errorf(vega.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var urls []string

	for _, selector := range listingSelectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			href, exists := sel.Attr("href")
			if !exists || href == "" || isNonHTTPLink(href) {
				return
			}
			resolved := resolveURL(base, href)
			if resolved == "" || seen[resolved] {
				return
			}
			seen[resolved] = true
			urls = append(urls, resolved)
		})
	}

	return urls, nil
}
