package goquery

import (
	"regexp"
	"strings"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/PuerkitoBio/goquery"
)

// Compile-time interface verification.
var _ vega.FinalExtractor = (*FinalExtractor)(nil)

// onclickURLPattern pulls a navigation target out of inline click handlers.
var onclickURLPattern = regexp.MustCompile(`(?i)(?:window\.location(?:\.href)?|location\.href|window\.open)\s*[=(]\s*['"]([^'"]+)['"]`)

// dataAttrs are probed in order on every element that carries one of them.
var dataAttrs = []string{"data-href", "data-link", "data-url"}

// anchorStrategy is one way of digging link candidates out of a page.
// Strategies run in order and their results are unified before host
// classification; the hostile pages this targets scatter the same link
// across plain anchors, inline scripts, meta refreshes and data attributes.
type anchorStrategy struct {
	name    string
	extract func(doc *goquery.Document) []vega.LinkAnchor
}

// FinalExtractor pulls final-host links and a title out of intermediary
// pages.
type FinalExtractor struct {
	ranker     *vega.HostRanker
	norm       *vega.Normalizer
	strategies []anchorStrategy
}

// NewFinalExtractor creates a FinalExtractor. Nil arguments fall back to
// defaults.
func NewFinalExtractor(ranker *vega.HostRanker, norm *vega.Normalizer) *FinalExtractor {
	if ranker == nil {
		ranker = vega.NewHostRanker(nil)
	}
	if norm == nil {
		norm = vega.NewNormalizer(vega.DefaultNormalizerRules())
	}
	e := &FinalExtractor{ranker: ranker, norm: norm}
	e.strategies = []anchorStrategy{
		{name: "anchor", extract: extractAnchors},
		{name: "script", extract: extractScriptURLs},
		{name: "meta-refresh", extract: extractMetaRefresh},
		{name: "data-attr", extract: extractDataAttrs},
	}
	return e
}

// FinalLinks runs the strategy list over the HTML, unifies the results by
// href, and keeps anchors whose target matches a known host and is not
// episode-like.
func (e *FinalExtractor) FinalLinks(html string) []vega.LinkAnchor {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []vega.LinkAnchor

	for _, st := range e.strategies {
		for _, a := range st.extract(doc) {
			if seen[a.Href] {
				continue
			}
			seen[a.Href] = true
			if _, ok := e.ranker.Classify(a.Href); !ok {
				continue
			}
			if e.norm.IsEpisodeLike(a.Text) || e.norm.IsEpisodeLike(a.Href) {
				continue
			}
			a.Source = st.name
			links = append(links, a)
		}
	}

	return links
}

// Title returns the page heading, preferring the post-title markup, then
// any h1, then title metadata. Returns "" when nothing usable exists.
func (e *FinalExtractor) Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	for _, selector := range []string{"h1.entry-title", "h1", "title"} {
		if text := squashSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func extractAnchors(doc *goquery.Document) []vega.LinkAnchor {
	var out []vega.LinkAnchor
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if !strings.HasPrefix(strings.ToLower(href), "http") {
			return
		}
		out = append(out, vega.LinkAnchor{Href: href, Text: squashSpace(sel.Text())})
	})
	return out
}

func extractScriptURLs(doc *goquery.Document) []vega.LinkAnchor {
	var out []vega.LinkAnchor
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		for _, m := range urlPattern.FindAllString(sel.Text(), -1) {
			out = append(out, vega.LinkAnchor{Href: m})
		}
	})
	return out
}

func extractMetaRefresh(doc *goquery.Document) []vega.LinkAnchor {
	var out []vega.LinkAnchor
	doc.Find("meta[http-equiv]").Each(func(_ int, sel *goquery.Selection) {
		if !strings.EqualFold(sel.AttrOr("http-equiv", ""), "refresh") {
			return
		}
		content := sel.AttrOr("content", "")
		idx := strings.Index(strings.ToLower(content), "url=")
		if idx == -1 {
			return
		}
		target := strings.TrimSpace(content[idx+len("url="):])
		target = strings.Trim(target, `'"`)
		if strings.HasPrefix(strings.ToLower(target), "http") {
			out = append(out, vega.LinkAnchor{Href: target})
		}
	})
	return out
}

func extractDataAttrs(doc *goquery.Document) []vega.LinkAnchor {
	var out []vega.LinkAnchor
	doc.Find("[data-href], [data-link], [data-url]").Each(func(_ int, sel *goquery.Selection) {
		for _, attr := range dataAttrs {
			if v := strings.TrimSpace(sel.AttrOr(attr, "")); strings.HasPrefix(strings.ToLower(v), "http") {
				out = append(out, vega.LinkAnchor{Href: v, Text: squashSpace(sel.Text())})
			}
		}
	})
	doc.Find("[onclick]").Each(func(_ int, sel *goquery.Selection) {
		if m := onclickURLPattern.FindStringSubmatch(sel.AttrOr("onclick", "")); m != nil {
			out = append(out, vega.LinkAnchor{Href: m[1], Text: squashSpace(sel.Text())})
		}
	})
	return out
}
