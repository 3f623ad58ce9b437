// Package mock provides function-field mock implementations of the domain
// interfaces for testing.
package mock

import (
	"context"

	vega "github.com/Manish787852/Vega-scraper"
)

var _ vega.InteractiveRenderer = (*Renderer)(nil)

// Renderer is a mock implementation of vega.InteractiveRenderer.
type Renderer struct {
	RenderFn            func(ctx context.Context, url string) (string, error)
	RenderInteractiveFn func(ctx context.Context, url string, opts vega.Interaction) (string, error)
	CloseFn             func() error
}

func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	return r.RenderFn(ctx, url)
}

func (r *Renderer) RenderInteractive(ctx context.Context, url string, opts vega.Interaction) (string, error) {
	return r.RenderInteractiveFn(ctx, url, opts)
}

func (r *Renderer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}
