package mock

import (
	vega "github.com/Manish787852/Vega-scraper"
)

var _ vega.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of vega.ListingExtractor.
type ListingExtractor struct {
	DetailURLsFn func(html string, baseURL string) ([]string, error)
}

func (e *ListingExtractor) DetailURLs(html string, baseURL string) ([]string, error) {
	return e.DetailURLsFn(html, baseURL)
}

var _ vega.DetailExtractor = (*DetailExtractor)(nil)

// DetailExtractor is a mock implementation of vega.DetailExtractor.
type DetailExtractor struct {
	IntermediariesFn func(html string) []vega.LinkAnchor
	PageQualitiesFn  func(html string) []vega.Quality
}

func (e *DetailExtractor) Intermediaries(html string) []vega.LinkAnchor {
	return e.IntermediariesFn(html)
}

func (e *DetailExtractor) PageQualities(html string) []vega.Quality {
	if e.PageQualitiesFn == nil {
		return nil
	}
	return e.PageQualitiesFn(html)
}

var _ vega.FinalExtractor = (*FinalExtractor)(nil)

// FinalExtractor is a mock implementation of vega.FinalExtractor.
type FinalExtractor struct {
	FinalLinksFn func(html string) []vega.LinkAnchor
	TitleFn      func(html string) string
}

func (e *FinalExtractor) FinalLinks(html string) []vega.LinkAnchor {
	return e.FinalLinksFn(html)
}

func (e *FinalExtractor) Title(html string) string {
	if e.TitleFn == nil {
		return ""
	}
	return e.TitleFn(html)
}
