package mock

import (
	"context"

	vega "github.com/Manish787852/Vega-scraper"
)

var _ vega.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of vega.Notifier.
type Notifier struct {
	NotifyFn func(ctx context.Context, path string, caption string) error
}

func (n *Notifier) Notify(ctx context.Context, path string, caption string) error {
	return n.NotifyFn(ctx, path, caption)
}
