package vega

import "context"

// Notifier delivers the accumulated results to an external channel after a
// run completes. Notification failures never affect ledger correctness or
// the process exit status.
type Notifier interface {
	// Notify uploads the results file at path with a short caption.
	Notify(ctx context.Context, path string, caption string) error
}
