// Package http provides plain-HTTP implementations of the rendering and
// sitemap-discovery interfaces: the non-interactive document fetch the
// resolver falls back to when browser rendering is exhausted, and sitemap
// crawling for candidate discovery when listing pages will not load.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	vega "github.com/Manish787852/Vega-scraper"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 15 * time.Second

// DefaultUserAgent identifies the fallback fetch as an ordinary browser.
// The catalog sites this pipeline targets serve reduced or blocked pages
// to obvious non-browser clients.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0"

// Ensure Renderer implements vega.Renderer at compile time.
var _ vega.Renderer = (*Renderer)(nil)

// Renderer retrieves HTML from URLs using plain HTTP requests. It does not
// execute JavaScript, so it misses dynamically inserted anchors, but it
// still surfaces meta-refresh and script-embedded URLs on pages the
// browser renderer could not load.
type Renderer struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(r *Renderer) {
		r.userAgent = ua
	}
}

// NewRenderer creates a new HTTP-based Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(r)
	}

	r.client = &http.Client{
		Timeout: r.timeout,
	}

	return r
}

// Render retrieves the HTML document at the given URL.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", vega.Errorf(statusCode(resp.StatusCode), "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP renderer this is a no-op since
// http.Client doesn't require explicit cleanup.
func (r *Renderer) Close() error {
	return nil
}

// statusCode maps an HTTP status to an application error code: 404s are
// permanent, everything else non-200 is worth retrying.
func statusCode(status int) string {
	if status == http.StatusNotFound {
		return vega.ENOTFOUND
	}
	return vega.ETRANSIENT
}
