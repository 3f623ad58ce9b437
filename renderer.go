package vega

import (
	"context"
	"time"
)

// Renderer retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content, or plain HTTP for the non-interactive fallback path.
type Renderer interface {
	// Render navigates to the URL, waits for the page to load,
	// and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Render(ctx context.Context, url string) (html string, err error)

	// Close releases rendering resources.
	// Must be called when the Renderer is no longer needed.
	Close() error
}

// Interaction bounds the shortener-bypass step: how many continue-style
// clicks to attempt and how long to poll for qualifying anchors that appear
// asynchronously.
type Interaction struct {
	// ClickLabels are text patterns for continue/click-here controls,
	// tried in order.
	ClickLabels []string

	// MaxClicks bounds interactive attempts.
	MaxClicks int

	// PollInterval and PollWindow bound the wait for anchors that appear
	// after the page settles.
	PollInterval time.Duration
	PollWindow   time.Duration

	// Ready reports whether the current HTML contains what the caller is
	// waiting for. Polling stops as soon as Ready returns true.
	Ready func(html string) bool
}

// InteractiveRenderer extends Renderer with the bypass step used on
// shortener-style gate pages. The returned HTML includes nested-frame
// content.
type InteractiveRenderer interface {
	Renderer

	RenderInteractive(ctx context.Context, url string, opts Interaction) (html string, err error)
}
