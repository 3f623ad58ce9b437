// Package crawl provides the crawl-and-resolve orchestration: listing
// discovery over a page range, per-candidate resolution through the
// intermediary chain, progress persistence and post-run notification.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/google/uuid"
)

// Frontier sizing for a run. Catalog listing pages carry a few dozen
// candidates each, so this is generous.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Pipeline sequences listing discovery over a page range and invokes the
// Resolver per candidate. Everything runs on a single logical worker:
// candidates and their hops are processed strictly sequentially, a
// deliberate robustness trade-off against a stateful, hostile rendering
// target.
type Pipeline struct {
	Renderer vega.Renderer
	Listings vega.ListingExtractor
	Resolver *Resolver
	Ledger   vega.Ledger
	Frontier vega.CandidateFrontier // optional; defaults to a bloom-backed FIFO
	Notifier vega.Notifier          // optional; absent credentials disable notification
	Sitemaps vega.SitemapService    // optional fallback discovery source

	// BaseURL is the catalog root; listing pages live at BaseURL/page/N/.
	BaseURL string

	// ResultsPath is handed to the Notifier after the run completes.
	ResultsPath string

	Retry  Attempts
	Logger *slog.Logger
}

// Result holds the outcome of one pipeline run.
type Result struct {
	RunID      string
	Pages      int // listing pages successfully rendered
	Candidates int // candidates handed to the resolver
	Skipped    int // candidates already in the ledger
	Emitted    int // records appended to the sink
	Abandoned  int // intermediary hops that failed
}

// Run crawls every listing page in the range, resolving each discovered
// candidate before moving on. Listing failures skip the page; candidate
// failures never halt the run. The notifier is invoked once, after the
// full range completes, and its failure is logged only.
func (p *Pipeline) Run(ctx context.Context, pages vega.PageRange) (*Result, error) {
	res := &Result{RunID: uuid.New().String()}
	logger := p.logger().With("run", res.RunID)

	frontier := p.Frontier
	if frontier == nil {
		frontier = NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	}

	base := strings.TrimRight(p.BaseURL, "/")
	sitemapTried := false

	for _, n := range pages.Pages() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		listURL := fmt.Sprintf("%s/page/%d/", base, n)
		logger.Info("listing page", "url", listURL)

		html, err := p.renderListing(ctx, listURL)
		if err != nil {
			logger.Warn("listing page failed", "url", listURL, "err", err)
			if p.Sitemaps != nil && !sitemapTried {
				sitemapTried = true
				p.discoverFromSitemap(ctx, frontier, logger)
			}
			continue
		}
		res.Pages++

		urls, err := p.Listings.DetailURLs(html, listURL)
		if err != nil {
			logger.Warn("listing extraction failed", "url", listURL, "err", err)
			continue
		}
		for _, u := range urls {
			frontier.Push(vega.DetailCandidate{URL: u, Page: n})
		}

		p.drain(ctx, frontier, res, logger)
	}

	// Catch anything pushed by a trailing sitemap fallback.
	p.drain(ctx, frontier, res, logger)

	if p.Notifier != nil {
		caption := fmt.Sprintf("run %s: %d records from %d pages", res.RunID, res.Emitted, res.Pages)
		if err := p.Notifier.Notify(ctx, p.ResultsPath, caption); err != nil {
			logger.Error("notification failed", "err", err)
		}
	}

	logger.Info("run finished",
		"pages", res.Pages,
		"candidates", res.Candidates,
		"skipped", res.Skipped,
		"emitted", res.Emitted,
		"abandoned", res.Abandoned,
	)
	return res, nil
}

// drain resolves queued candidates in discovery order.
func (p *Pipeline) drain(ctx context.Context, frontier vega.CandidateFrontier, res *Result, logger *slog.Logger) {
	for {
		if ctx.Err() != nil {
			return
		}
		cand, ok := frontier.Pop()
		if !ok {
			return
		}
		if p.Ledger.IsProcessed(cand.URL) {
			res.Skipped++
			continue
		}

		logger.Info("resolving candidate", "url", cand.URL, "page", cand.Page)
		stats := p.Resolver.Resolve(ctx, cand)
		res.Candidates++
		res.Emitted += stats.Emitted
		res.Abandoned += stats.Abandoned
	}
}

// renderListing fetches one listing page with the bounded retry policy.
func (p *Pipeline) renderListing(ctx context.Context, url string) (string, error) {
	var html string
	err := p.retry().Do(ctx, func(ctx context.Context) error {
		var err error
		html, err = p.Renderer.Render(ctx, url)
		return err
	})
	return html, err
}

// discoverFromSitemap pushes sitemap-discovered detail URLs when listing
// pages will not render. Tried at most once per run.
func (p *Pipeline) discoverFromSitemap(ctx context.Context, frontier vega.CandidateFrontier, logger *slog.Logger) {
	urls, err := p.Sitemaps.DiscoverDetailURLs(ctx, p.BaseURL)
	if err != nil {
		logger.Warn("sitemap discovery failed", "err", err)
		return
	}
	logger.Info("sitemap discovery", "urls", len(urls))
	for _, u := range urls {
		frontier.Push(vega.DetailCandidate{URL: u})
	}
}

func (p *Pipeline) retry() Attempts {
	if p.Retry == (Attempts{}) {
		return DefaultAttempts()
	}
	return p.Retry
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
