// Package rod implements browser-automation rendering using Chrome via
// go-rod: plain rendering for listing and detail pages, the interactive
// bypass for shortener gate pages, request interception for the ad and
// tracker blocklist, and browser recycling for long runs.
package rod

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// BrowserManager manages browser lifecycle with automatic recycling to
// prevent memory accumulation. Chrome accumulates memory over time under
// load, and the baseline never returns to initial levels even with proper
// page cleanup. Recycling the browser periodically addresses this issue,
// which matters on catalog runs that render hundreds of pages.
//
// Every managed browser carries the request-interception blocklist:
// requests whose URL contains a blocked substring are failed before they
// load, which keeps ad networks, trackers and popup shorteners out of the
// rendered pages.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	browser       *rod.Browser
	launcher      *launcher.Launcher
	router        *rod.HijackRouter
	blockPatterns []string
	headless      bool
	pageCount     int64
	maxPages      int64
	mu            sync.Mutex
	closed        atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the maximum number of pages before the browser is
// recycled. Defaults to 75 if not specified.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithBlockPatterns sets the URL substrings aborted by the request
// interceptor. An empty list disables interception.
func WithBlockPatterns(patterns []string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.blockPatterns = lowerAll(patterns)
	}
}

// WithHeadless controls headless mode. Defaults to true; headful is useful
// when debugging a bypass sequence locally.
func WithHeadless(headless bool) ManagerOption {
	return func(bm *BrowserManager) {
		bm.headless = headless
	}
}

// NewBrowserManager creates a new BrowserManager that launches a Chrome
// browser. The browser will be recycled after maxPages (default 75) pages
// have been processed. Close must be called when the BrowserManager is no
// longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
		headless: true,
	}
	for _, opt := range opts {
		opt(bm)
	}

	if err := bm.launchBrowser(); err != nil {
		return nil, err
	}

	return bm, nil
}

// Browser returns the current browser instance, recycling if the page count
// has reached maxPages. Callers should call IncrementPageCount after using
// the browser to process a page.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if atomic.LoadInt64(&bm.pageCount) >= bm.maxPages {
		bm.recycleBrowser()
	}

	return bm.browser
}

// IncrementPageCount increments the page counter. Call this after
// successfully processing a page to track progress toward the recycling
// threshold.
func (bm *BrowserManager) IncrementPageCount() {
	atomic.AddInt64(&bm.pageCount, 1)
}

// Close releases browser resources. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	return bm.closeBrowser()
}

// launchBrowser starts a new browser instance with stability flags and
// installs the request-interception blocklist.
func (bm *BrowserManager) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(bm.headless)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	if len(bm.blockPatterns) > 0 {
		router := browser.HijackRequests()
		if err := router.Add("*", "", bm.hijack); err != nil {
			_ = browser.Close()
			lnchr.Kill()
			return fmt.Errorf("installing request blocklist: %w", err)
		}
		go router.Run()
		bm.router = router
	}

	bm.browser = browser
	bm.launcher = lnchr
	return nil
}

// hijack fails blocklisted requests and continues everything else.
func (bm *BrowserManager) hijack(ctx *rod.Hijack) {
	u := strings.ToLower(ctx.Request.URL().String())
	for _, p := range bm.blockPatterns {
		if strings.Contains(u, p) {
			ctx.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
			return
		}
	}
	ctx.ContinueRequest(&proto.FetchContinueRequest{})
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (bm *BrowserManager) closeBrowser() error {
	if bm.router != nil {
		_ = bm.router.Stop()
		bm.router = nil
	}
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching the new browser fails, the old browser is kept.
// Must be called with mu held.
func (bm *BrowserManager) recycleBrowser() {
	oldBrowser := bm.browser
	oldLauncher := bm.launcher
	oldRouter := bm.router
	bm.browser = nil
	bm.launcher = nil
	bm.router = nil

	if err := bm.launchBrowser(); err != nil {
		bm.browser = oldBrowser
		bm.launcher = oldLauncher
		bm.router = oldRouter
		return
	}

	if oldRouter != nil {
		_ = oldRouter.Stop()
	}
	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&bm.pageCount, 0)
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}
