package goquery

import (
	"strings"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/PuerkitoBio/goquery"
)

// Compile-time interface verification.
var _ vega.DetailExtractor = (*DetailExtractor)(nil)

// DetailExtractor pulls intermediary link candidates out of detail pages.
// A candidate must carry an intermediary marker in its href or text AND an
// accept label in its text; the reject vocabulary always excludes, and so
// do episode indicators.
type DetailExtractor struct {
	markers []string
	accept  []string
	reject  []string
	norm    *vega.Normalizer
}

// NewDetailExtractor creates a DetailExtractor over the given vocabularies.
// Nil slices fall back to the defaults.
func NewDetailExtractor(norm *vega.Normalizer, markers, accept, reject []string) *DetailExtractor {
	if norm == nil {
		norm = vega.NewNormalizer(vega.DefaultNormalizerRules())
	}
	if markers == nil {
		markers = vega.DefaultIntermediaryMarkers()
	}
	if accept == nil {
		accept = vega.DefaultAcceptLabels()
	}
	if reject == nil {
		reject = vega.DefaultRejectLabels()
	}
	return &DetailExtractor{markers: markers, accept: accept, reject: reject, norm: norm}
}

// Intermediaries returns qualifying anchors in document order, deduplicated
// by href.
func (e *DetailExtractor) Intermediaries(html string) []vega.LinkAnchor {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var anchors []vega.LinkAnchor

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || isNonHTTPLink(href) {
			return
		}
		text := squashSpace(sel.Text())

		if containsAny(text, e.reject) {
			return
		}
		if !containsAny(href, e.markers) && !containsAny(text, e.markers) {
			return
		}
		if !containsAny(text, e.accept) {
			return
		}
		if e.norm.IsEpisodeLike(text) {
			return
		}
		if seen[href] {
			return
		}
		seen[href] = true
		anchors = append(anchors, vega.LinkAnchor{Href: href, Text: text, Source: "anchor"})
	})

	return anchors
}

// PageQualities returns the distinct quality tags mentioned in the page
// body, in order of first appearance.
func (e *DetailExtractor) PageQualities(html string) []vega.Quality {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return e.norm.ExtractQualities(doc.Find("body").Text())
}
