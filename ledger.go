package vega

import "context"

// Ledger is the durable set of fully-processed detail pages. A URL is marked
// exactly once, after all resolution attempts for it finished (success or
// failure), and is never revisited until the ledger is externally reset.
//
// Implementations persist immediately on MarkProcessed, not batched, so an
// interrupted run resumes without reprocessing. Persistence failures degrade
// to in-memory tracking and are never fatal.
type Ledger interface {
	// IsProcessed reports whether the detail URL completed in this or any
	// prior run.
	IsProcessed(url string) bool

	// MarkProcessed records the detail URL as done. Idempotent. The returned
	// error reports persistence trouble only; the in-memory mark always
	// takes effect.
	MarkProcessed(ctx context.Context, url string) error
}
