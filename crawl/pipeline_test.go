package crawl_test

import (
	"context"
	"fmt"
	"testing"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/Manish787852/Vega-scraper/crawl"
	"github.com/Manish787852/Vega-scraper/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture wires a pipeline over canned pages for an end-to-end pass: a
// listing page with detail links, detail pages with intermediary anchors
// and intermediary pages with one final host link each.
type fixture struct {
	pages    map[string]string
	sink     *mock.CollectingSink
	ledger   *memLedger
	pipeline *crawl.Pipeline
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		pages: map[string]string{
			"https://catalog.example/page/1/": "listing",
			"https://catalog.example/alpha/":  "detail-alpha",
			"https://catalog.example/beta/":   "detail-beta",
			"https://vgmlinks.example/alpha":  "inter-alpha",
			"https://vgmlinks.example/beta":   "inter-beta",
		},
		sink:   &mock.CollectingSink{},
		ledger: newMemLedger(),
	}

	renderer := &mock.Renderer{
		RenderFn: func(_ context.Context, url string) (string, error) {
			html, ok := f.pages[url]
			if !ok {
				return "", vega.Errorf(vega.ETRANSIENT, "render timeout for %s", url)
			}
			return html, nil
		},
		RenderInteractiveFn: func(_ context.Context, url string, _ vega.Interaction) (string, error) {
			html, ok := f.pages[url]
			if !ok {
				return "", vega.Errorf(vega.ETRANSIENT, "render timeout for %s", url)
			}
			return html, nil
		},
	}

	resolver := &crawl.Resolver{
		Renderer: renderer,
		Details: &mock.DetailExtractor{
			IntermediariesFn: func(html string) []vega.LinkAnchor {
				switch html {
				case "detail-alpha":
					return []vega.LinkAnchor{{Href: "https://vgmlinks.example/alpha", Text: "Download Batch"}}
				case "detail-beta":
					return []vega.LinkAnchor{{Href: "https://vgmlinks.example/beta", Text: "Download Zip"}}
				}
				return nil
			},
		},
		Finals: &mock.FinalExtractor{
			FinalLinksFn: func(html string) []vega.LinkAnchor {
				switch html {
				case "inter-alpha":
					return []vega.LinkAnchor{{Href: "https://gdtot.example/alpha", Text: "Download 720p"}}
				case "inter-beta":
					return []vega.LinkAnchor{{Href: "https://gdtot.example/beta", Text: "Download 720p"}}
				}
				return nil
			},
			TitleFn: func(html string) string {
				if html == "inter-alpha" {
					return "Alpha.Movie.720p.WEBRip"
				}
				return "Beta.Movie.720p.WEBRip"
			},
		},
		Ranker:     vega.NewHostRanker(nil),
		Normalizer: vega.NewNormalizer(vega.DefaultNormalizerRules()),
		Ledger:     f.ledger,
		Sink:       f.sink,
		Logger:     quietLogger(),
		Retry:      fastRetry(),
	}

	f.pipeline = &crawl.Pipeline{
		Renderer: renderer,
		Listings: &mock.ListingExtractor{
			DetailURLsFn: func(html string, _ string) ([]string, error) {
				if html != "listing" {
					return nil, nil
				}
				return []string{
					"https://catalog.example/alpha/",
					"https://catalog.example/beta/",
				}, nil
			},
		},
		Resolver: resolver,
		Ledger:   f.ledger,
		BaseURL:  "https://catalog.example",
		Retry:    fastRetry(),
		Logger:   quietLogger(),
	}
	return f
}

func TestPipeline_resolves_listing_candidates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	res, err := f.pipeline.Run(context.Background(), vega.PageRange{Start: 1, End: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, 2, res.Candidates)
	assert.Equal(t, 2, res.Emitted)
	require.Len(t, f.sink.Records, 2)
	assert.Equal(t, vega.Record{Title: "Alpha Movie", Quality: vega.Quality720p, URL: "https://gdtot.example/alpha"}, f.sink.Records[0])
	assert.Equal(t, vega.Record{Title: "Beta Movie", Quality: vega.Quality720p, URL: "https://gdtot.example/beta"}, f.sink.Records[1])
	assert.Equal(t, 1, f.ledger.marks["https://catalog.example/alpha/"])
	assert.Equal(t, 1, f.ledger.marks["https://catalog.example/beta/"])
}

func TestPipeline_candidate_without_intermediaries_yields_nothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	// Beta's detail page renders but carries no download entry points.
	f.pages["https://catalog.example/beta/"] = "detail-empty"

	res, err := f.pipeline.Run(context.Background(), vega.PageRange{Start: 1, End: 1})
	require.NoError(t, err)

	require.Len(t, f.sink.Records, 1)
	assert.Equal(t, "Alpha Movie", f.sink.Records[0].Title)
	assert.Equal(t, vega.Quality720p, f.sink.Records[0].Quality)
	assert.Equal(t, 1, f.ledger.marks["https://catalog.example/alpha/"])
	assert.Equal(t, 1, f.ledger.marks["https://catalog.example/beta/"], "empty candidate still marked processed")
	assert.Equal(t, 2, res.Candidates)
	assert.Equal(t, 1, res.Emitted)
}

func TestPipeline_rerun_skips_ledgered_candidates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.pipeline.Run(context.Background(), vega.PageRange{Start: 1, End: 1})
	require.NoError(t, err)
	require.Len(t, f.sink.Records, 2)

	res, err := f.pipeline.Run(context.Background(), vega.PageRange{Start: 1, End: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Skipped)
	assert.Zero(t, res.Candidates, "re-run must resolve nothing")
	assert.Len(t, f.sink.Records, 2, "no new records on re-run")
}

func TestPipeline_failed_candidate_does_not_halt_siblings(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	// Alpha's detail page stops rendering.
	delete(f.pages, "https://catalog.example/alpha/")

	res, err := f.pipeline.Run(context.Background(), vega.PageRange{Start: 1, End: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Candidates)
	require.Len(t, f.sink.Records, 1)
	assert.Equal(t, "Beta Movie", f.sink.Records[0].Title)
	assert.Equal(t, 1, f.ledger.marks["https://catalog.example/alpha/"], "failed candidate still marked")
}

func TestPipeline_skips_unrenderable_listing_pages(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.pages["https://catalog.example/page/2/"] = "listing-empty"

	res, err := f.pipeline.Run(context.Background(), vega.PageRange{Start: 1, End: 3})
	require.NoError(t, err)

	// Page 2 renders but yields nothing; page 3 does not render at all.
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, 2, res.Candidates)
	assert.Len(t, f.sink.Records, 2)
}

func TestPipeline_falls_back_to_sitemap_once(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	delete(f.pages, "https://catalog.example/page/1/")

	calls := 0
	f.pipeline.Sitemaps = &mock.SitemapService{
		DiscoverDetailURLsFn: func(_ context.Context, baseURL string) ([]string, error) {
			calls++
			assert.Equal(t, "https://catalog.example", baseURL)
			return []string{"https://catalog.example/alpha/"}, nil
		},
	}

	res, err := f.pipeline.Run(context.Background(), vega.PageRange{Start: 1, End: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "sitemap discovery runs at most once per run")
	assert.Equal(t, 1, res.Candidates)
	require.Len(t, f.sink.Records, 1)
	assert.Equal(t, "Alpha Movie", f.sink.Records[0].Title)
}

func TestPipeline_notifies_after_run(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var gotPath, gotCaption string
	f.pipeline.ResultsPath = "/tmp/results.txt"
	f.pipeline.Notifier = &mock.Notifier{
		NotifyFn: func(_ context.Context, path string, caption string) error {
			gotPath, gotCaption = path, caption
			return nil
		},
	}

	res, err := f.pipeline.Run(context.Background(), vega.PageRange{Start: 1, End: 1})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/results.txt", gotPath)
	assert.Equal(t, fmt.Sprintf("run %s: 2 records from 1 pages", res.RunID), gotCaption)
}

func TestPipeline_notification_failure_is_not_fatal(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.pipeline.Notifier = &mock.Notifier{
		NotifyFn: func(context.Context, string, string) error {
			return vega.Errorf(vega.ETRANSIENT, "telegram unreachable")
		},
	}

	res, err := f.pipeline.Run(context.Background(), vega.PageRange{Start: 1, End: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Emitted)
}

func TestPipeline_cancellation_stops_the_range(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.pipeline.Run(ctx, vega.PageRange{Start: 1, End: 5})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.sink.Records)
}
