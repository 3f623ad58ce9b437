package vega

import "context"

// DetailCandidate is a detail page queued for resolution. Its normalized URL
// is the unique key.
type DetailCandidate struct {
	URL string

	// Page is the listing page number the candidate was discovered on.
	Page int
}

// CandidateFrontier manages the in-run candidate queue with deduplication.
// Candidates come back out in discovery order; the Ledger, not the frontier,
// is the cross-run authority on what is done.
type CandidateFrontier interface {
	// Push adds a candidate to the frontier.
	// Returns false if the URL has already been seen this run.
	Push(c DetailCandidate) bool

	// Pop returns the next candidate in discovery order.
	// Returns false if the frontier is empty.
	Pop() (DetailCandidate, bool)

	// Len returns the number of queued candidates.
	Len() int
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
