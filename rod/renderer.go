package rod

import (
	"context"
	"regexp"
	"strings"
	"time"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Renderer implements vega.InteractiveRenderer at compile time.
var _ vega.InteractiveRenderer = (*Renderer)(nil)

// clickableSelector covers the controls shortener gates hide their
// continue step behind.
const clickableSelector = "a, button, input[type=button], input[type=submit]"

// clickTimeout bounds the search for a single continue control. Gates that
// have no such control should fail fast into the polling phase.
const clickTimeout = 3 * time.Second

// Renderer retrieves rendered HTML from URLs using Chrome browser
// automation, with an interactive mode for shortener-style gate pages.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	manager *BrowserManager
}

// NewRenderer creates a Renderer on top of a BrowserManager. Close must be
// called when the Renderer is no longer needed; it closes the manager.
func NewRenderer(manager *BrowserManager) *Renderer {
	return &Renderer{manager: manager}
}

// Render navigates to the URL, waits for the page to load, and returns the
// rendered HTML including nested-frame content.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := r.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()
	defer r.manager.IncrementPageCount()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return collectHTML(page)
}

// RenderInteractive navigates to a gate page and runs the bypass step:
// bounded continue-style clicks followed by polling for content that
// satisfies opts.Ready. The last snapshot is returned when the poll window
// expires without Ready firing; gates sometimes reveal their payload in a
// form the caller's fallback extraction can still use.
func (r *Renderer) RenderInteractive(ctx context.Context, url string, opts vega.Interaction) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := r.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()
	defer r.manager.IncrementPageCount()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if html, ok := r.snapshot(page, opts); ok {
		return html, nil
	}

	pattern := labelPattern(opts.ClickLabels)
	for i := 0; i < opts.MaxClicks; i++ {
		if !clickContinue(page, pattern) {
			break
		}
		// A click can trigger navigation; give the page a moment to settle
		// before checking again.
		_ = page.WaitLoad()
		if html, ok := r.snapshot(page, opts); ok {
			return html, nil
		}
	}

	deadline := time.Now().Add(opts.PollWindow)
	for {
		html, ok := r.snapshot(page, opts)
		if ok || time.Now().After(deadline) {
			return html, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(opts.PollInterval):
		}
	}
}

// Close releases browser resources.
func (r *Renderer) Close() error {
	return r.manager.Close()
}

// snapshot collects the current HTML and reports whether it satisfies the
// interaction's readiness check. A nil Ready accepts any snapshot.
func (r *Renderer) snapshot(page *rod.Page, opts vega.Interaction) (string, bool) {
	html, err := collectHTML(page)
	if err != nil {
		return "", false
	}
	if opts.Ready == nil {
		return html, true
	}
	return html, opts.Ready(html)
}

// collectHTML returns the page HTML with the content of any nested frames
// appended. Gate pages frequently bury the destination anchor in an
// iframe, so frame content has to be part of what extraction sees.
func collectHTML(page *rod.Page) (string, error) {
	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	frames, err := page.Elements("iframe")
	if err != nil {
		return html, nil
	}

	var sb strings.Builder
	sb.WriteString(html)
	for _, el := range frames {
		frame, err := el.Frame()
		if err != nil {
			continue
		}
		fh, err := frame.HTML()
		if err != nil {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(fh)
	}
	return sb.String(), nil
}

// clickContinue finds and clicks the first control matching the label
// pattern. Reports whether a click happened.
func clickContinue(page *rod.Page, pattern string) bool {
	el, err := page.Timeout(clickTimeout).ElementR(clickableSelector, pattern)
	if err != nil {
		return false
	}
	if err := el.ScrollIntoView(); err != nil {
		return false
	}
	return el.Click(proto.InputMouseButtonLeft, 1) == nil
}

// labelPattern builds the case-insensitive JS regex ElementR matches
// element text against.
func labelPattern(labels []string) string {
	quoted := make([]string, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return "/" + strings.Join(quoted, "|") + "/i"
}
