// Package goquery provides role-specific HTML extraction for the crawl
// pipeline using github.com/PuerkitoBio/goquery. Extraction is pure with
// respect to its input; extractors never navigate.
package goquery

import (
	"net/url"
	"regexp"
	"strings"
)

// urlPattern matches absolute http(s) URLs embedded in script bodies and
// attribute values.
var urlPattern = regexp.MustCompile(`https?://[^\s"'<>\\)]+`)

// isNonHTTPLink returns true for hrefs that can't resolve to a page
// (javascript:, mailto:, tel:, fragments).
func isNonHTTPLink(href string) bool {
	low := strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(low, "javascript:") ||
		strings.HasPrefix(low, "mailto:") ||
		strings.HasPrefix(low, "tel:") ||
		strings.HasPrefix(low, "#")
}

// resolveURL resolves href against base and returns the absolute URL,
// or "" if href is unparsable.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// containsAny reports whether the lowercased s contains any of the
// lowercased substrings.
func containsAny(s string, subs []string) bool {
	low := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(low, strings.ToLower(sub)) {
			return true
		}
	}
	return false
}

// squashSpace collapses all whitespace runs to single spaces and trims.
func squashSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
