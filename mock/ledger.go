package mock

import (
	"context"

	vega "github.com/Manish787852/Vega-scraper"
)

var _ vega.Ledger = (*Ledger)(nil)

// Ledger is a mock implementation of vega.Ledger.
type Ledger struct {
	IsProcessedFn   func(url string) bool
	MarkProcessedFn func(ctx context.Context, url string) error
}

func (l *Ledger) IsProcessed(url string) bool {
	return l.IsProcessedFn(url)
}

func (l *Ledger) MarkProcessed(ctx context.Context, url string) error {
	return l.MarkProcessedFn(ctx, url)
}
