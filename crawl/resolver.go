package crawl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/cespare/xxhash/v2"
)

// Default bounds for the shortener bypass step.
const (
	DefaultMaxClicks    = 3
	DefaultPollInterval = 500 * time.Millisecond
	DefaultPollWindow   = 7 * time.Second
)

// Resolver drives the renderer across the bounded multi-hop chain for one
// detail candidate: detail page → accepted intermediaries → final-host
// links. Hops are processed strictly sequentially; a hop failure abandons
// that hop only, never its siblings. The candidate is marked processed in
// the ledger exactly once, after all attempts finish.
type Resolver struct {
	Renderer   vega.InteractiveRenderer
	Fallback   vega.Renderer // optional non-interactive document fetch
	Details    vega.DetailExtractor
	Finals     vega.FinalExtractor
	Ranker     *vega.HostRanker
	Normalizer *vega.Normalizer
	Ledger     vega.Ledger
	Sink       vega.RecordSink
	Limiter    vega.DomainLimiter // optional
	Logger     *slog.Logger

	// Shorteners are URL substrings that trigger the interactive bypass
	// instead of a plain render. Defaults to vega.DefaultShortenerPatterns.
	Shorteners []string

	// ContinueLabels are the bypass click targets.
	// Defaults to vega.DefaultContinueLabels.
	ContinueLabels []string

	Retry        Attempts
	MaxClicks    int
	PollInterval time.Duration
	PollWindow   time.Duration
}

// ResolveStats summarizes one candidate's resolution.
type ResolveStats struct {
	Intermediaries int
	Emitted        int
	Abandoned      int
}

// Resolve runs the state machine for one candidate. It never fails the
// run: every outcome, including a detail page that won't load, ends with
// the candidate marked processed so it is not retried across runs.
func (r *Resolver) Resolve(ctx context.Context, cand vega.DetailCandidate) ResolveStats {
	var stats ResolveStats

	// Marking happens on every exit path, exactly once, after all attempts.
	defer func() {
		if err := r.Ledger.MarkProcessed(ctx, cand.URL); err != nil {
			r.logger().Error("ledger persist failed, continuing in-memory", "url", cand.URL, "err", err)
		}
	}()

	html, err := r.fetch(ctx, cand.URL)
	if err != nil {
		r.logger().Warn("detail page abandoned", "url", cand.URL, "err", err)
		return stats
	}

	inters := r.Details.Intermediaries(html)
	if len(inters) == 0 {
		r.logger().Info("no intermediary links", "url", cand.URL)
		return stats
	}
	stats.Intermediaries = len(inters)

	// Page-level quality tags are consumed positionally, across all of the
	// candidate's intermediaries, by final links with no quality of their own.
	pool := &qualityPool{set: r.Details.PageQualities(html)}
	dedup := newDedupSet()

	for _, link := range inters {
		if err := r.resolveIntermediary(ctx, link, pool, dedup, &stats); err != nil {
			stats.Abandoned++
			r.logger().Warn("intermediary hop abandoned", "url", link.Href, "err", err)
		}
	}

	return stats
}

// resolveIntermediary loads one intermediary page, extracts final-host
// links, attributes a quality to each and emits records not already seen
// for this candidate.
func (r *Resolver) resolveIntermediary(ctx context.Context, link vega.LinkAnchor, pool *qualityPool, dedup *dedupSet, stats *ResolveStats) error {
	var html string
	var err error
	if matchesAny(link.Href, r.shorteners()) {
		html, err = r.fetchInteractive(ctx, link.Href)
	} else {
		html, err = r.fetch(ctx, link.Href)
	}
	if err != nil {
		return err
	}

	finals := r.Finals.FinalLinks(html)
	if len(finals) == 0 {
		r.logger().Info("no final links", "url", link.Href)
		return nil
	}

	title := r.Normalizer.NormalizeTitle(r.Finals.Title(html))

	// Host priority is the sole authority among links for the same quality:
	// the best-ranked one reaches the dedup set first. Stable, so discovery
	// order breaks ties.
	sort.SliceStable(finals, func(i, j int) bool {
		ri, _ := r.Ranker.Classify(finals[i].Href)
		rj, _ := r.Ranker.Classify(finals[j].Href)
		return ri < rj
	})

	for _, a := range finals {
		q := r.attributeQuality(a, pool)
		if dedup.seen(title, q) {
			continue
		}
		rec := vega.Record{Title: title, Quality: q, URL: a.Href}
		if err := r.Sink.Append(ctx, rec); err != nil {
			r.logger().Error("sink append failed", "url", a.Href, "err", err)
			continue
		}
		dedup.add(title, q)
		stats.Emitted++
		r.logger().Info("record emitted", "title", title, "quality", q, "url", a.Href)
	}

	return nil
}

// attributeQuality applies the attribution chain: text near the final
// anchor, then the final URL itself, then positional consumption of the
// detail page's quality set, then unknown (emitted at most once per
// candidate via the dedup set).
func (r *Resolver) attributeQuality(final vega.LinkAnchor, pool *qualityPool) vega.Quality {
	if q := r.Normalizer.ExtractQuality(final.Text); q != vega.QualityUnknown {
		return q
	}
	if q := r.Normalizer.ExtractQuality(final.Href); q != vega.QualityUnknown {
		return q
	}
	return pool.take()
}

// fetch renders a URL with the bounded retry policy, falling back to a
// non-interactive document fetch when the renderer is exhausted.
func (r *Resolver) fetch(ctx context.Context, url string) (string, error) {
	var html string
	err := r.retry().Do(ctx, func(ctx context.Context) error {
		if err := r.wait(ctx, url); err != nil {
			return err
		}
		var err error
		html, err = r.Renderer.Render(ctx, url)
		return err
	})
	if err == nil {
		return html, nil
	}

	if r.Fallback != nil {
		r.logger().Warn("render exhausted, trying document fetch", "url", url, "err", err)
		if html, ferr := r.Fallback.Render(ctx, url); ferr == nil {
			return html, nil
		}
	}
	return "", err
}

// fetchInteractive renders a shortener-style gate page with the bypass
// step: bounded continue clicks, then polling for qualifying anchors
// (nested frames included) within the poll window.
func (r *Resolver) fetchInteractive(ctx context.Context, url string) (string, error) {
	opts := vega.Interaction{
		ClickLabels:  r.continueLabels(),
		MaxClicks:    r.maxClicks(),
		PollInterval: r.pollInterval(),
		PollWindow:   r.pollWindow(),
		Ready: func(html string) bool {
			return len(r.Finals.FinalLinks(html)) > 0
		},
	}

	var html string
	err := r.retry().Do(ctx, func(ctx context.Context) error {
		if err := r.wait(ctx, url); err != nil {
			return err
		}
		var err error
		html, err = r.Renderer.RenderInteractive(ctx, url, opts)
		return err
	})
	if err == nil {
		return html, nil
	}

	// A plain document fetch can still reveal meta-refresh or script URLs.
	if r.Fallback != nil {
		if html, ferr := r.Fallback.Render(ctx, url); ferr == nil {
			return html, nil
		}
	}
	return "", err
}

func (r *Resolver) wait(ctx context.Context, url string) error {
	if r.Limiter == nil {
		return nil
	}
	return r.Limiter.Wait(ctx, HostOf(url))
}

func (r *Resolver) retry() Attempts {
	if r.Retry == (Attempts{}) {
		return DefaultAttempts()
	}
	return r.Retry
}

func (r *Resolver) shorteners() []string {
	if r.Shorteners == nil {
		return vega.DefaultShortenerPatterns()
	}
	return r.Shorteners
}

func (r *Resolver) continueLabels() []string {
	if r.ContinueLabels == nil {
		return vega.DefaultContinueLabels()
	}
	return r.ContinueLabels
}

func (r *Resolver) maxClicks() int {
	if r.MaxClicks <= 0 {
		return DefaultMaxClicks
	}
	return r.MaxClicks
}

func (r *Resolver) pollInterval() time.Duration {
	if r.PollInterval <= 0 {
		return DefaultPollInterval
	}
	return r.PollInterval
}

func (r *Resolver) pollWindow() time.Duration {
	if r.PollWindow <= 0 {
		return DefaultPollWindow
	}
	return r.PollWindow
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func matchesAny(s string, subs []string) bool {
	low := strings.ToLower(s)
	for _, sub := range subs {
		if strings.Contains(low, sub) {
			return true
		}
	}
	return false
}

// qualityPool hands out the detail page's quality tags in discovery order
// to final links that carry no quality of their own. Exhausted pools hand
// out unknown; the dedup set drops a second unknown for the same title.
type qualityPool struct {
	set  []vega.Quality
	next int
}

func (p *qualityPool) take() vega.Quality {
	if p.next < len(p.set) {
		q := p.set[p.next]
		p.next++
		return q
	}
	return vega.QualityUnknown
}

// dedupSet is the per-candidate (title, quality) set backing emit-once
// semantics. Keys are xxhash digests rather than concatenated strings to
// keep the set allocation-light on large batch pages.
type dedupSet struct {
	keys map[uint64]struct{}
}

func newDedupSet() *dedupSet {
	return &dedupSet{keys: make(map[uint64]struct{})}
}

func dedupKey(title string, q vega.Quality) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(title)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(string(q))
	return h.Sum64()
}

func (d *dedupSet) seen(title string, q vega.Quality) bool {
	_, ok := d.keys[dedupKey(title, q)]
	return ok
}

func (d *dedupSet) add(title string, q vega.Quality) {
	d.keys[dedupKey(title, q)] = struct{}{}
}
