package vega

// LinkAnchor is a link candidate pulled out of rendered content. Anchors are
// ephemeral: they exist only between extraction and classification.
type LinkAnchor struct {
	Href string
	Text string

	// Source names the extraction strategy that produced the anchor
	// (e.g. "anchor", "script", "meta-refresh", "data-attr").
	Source string
}

// ListingExtractor pulls detail-page URLs out of a rendered listing page.
type ListingExtractor interface {
	// DetailURLs returns absolute detail URLs in document order.
	// The baseURL resolves relative hrefs.
	DetailURLs(html string, baseURL string) ([]string, error)
}

// DetailExtractor pulls intermediary link candidates and page-level quality
// tags out of a rendered detail page.
type DetailExtractor interface {
	// Intermediaries returns anchors that look like link-aggregator targets:
	// href matches the intermediary-marker vocabulary, text matches the
	// accept vocabulary, the reject vocabulary does not match, and the text
	// is not episode-like.
	Intermediaries(html string) []LinkAnchor

	// PageQualities returns the distinct quality tags mentioned anywhere on
	// the page, in order of first appearance. The resolver consumes these
	// positionally for final links it cannot attribute directly.
	PageQualities(html string) []Quality
}

// FinalExtractor pulls final-host link candidates and a human-readable title
// out of a rendered intermediary page.
type FinalExtractor interface {
	// FinalLinks returns anchors whose target matches a known host and is
	// not episode-like. Implementations run an ordered list of strategies
	// (plain anchors, inline-script URLs, meta-refresh targets, data
	// attributes) and unify the results.
	FinalLinks(html string) []LinkAnchor

	// Title returns the best-effort heading from the page, falling back to
	// title metadata. Returns "" when nothing usable exists; the normalizer
	// supplies the "Unknown" fallback.
	Title(html string) string
}
