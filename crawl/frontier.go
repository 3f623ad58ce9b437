package crawl

import (
	"strings"
	"sync"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/Manish787852/Vega-scraper/bloom"
)

// Compile-time interface verification.
var _ vega.CandidateFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO candidate queue with Bloom filter
// deduplication. FIFO because detail candidates must be resolved in
// discovery order; the ledger, not the frontier, decides what is already
// done across runs. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []vega.DetailCandidate
}

// NewFrontier creates a Frontier sized for n expected candidates with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// Push adds a candidate to the frontier.
// Returns false if the URL has already been seen this run. URL fragments
// are stripped first; URLs differing only by fragment are duplicates.
func (f *Frontier) Push(c vega.DetailCandidate) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url := c.URL
	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	c.URL = url
	f.queue = append(f.queue, c)
	return true
}

// Pop returns the next candidate in discovery order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (vega.DetailCandidate, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return vega.DetailCandidate{}, false
	}
	c := f.queue[0]
	f.queue = f.queue[1:]
	return c, true
}

// Len returns the number of queued candidates.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}
