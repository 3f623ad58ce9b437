package crawl_test

import (
	"context"
	"testing"
	"time"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/Manish787852/Vega-scraper/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements vega.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ vega.DomainLimiter = crawl.NewDomainLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "catalog.example")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same domain", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10) // 10 req/sec = 100ms between requests

		err := limiter.Wait(context.Background(), "catalog.example")
		require.NoError(t, err)

		start := time.Now()
		err = limiter.Wait(context.Background(), "catalog.example")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different domains have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(10)

		err := limiter.Wait(context.Background(), "catalog.example")
		require.NoError(t, err)

		// Gate and final-host domains must not pay the catalog's tax.
		start := time.Now()
		err = limiter.Wait(context.Background(), "gdtot.example")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "different domain should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewDomainLimiter(1)

		err := limiter.Wait(context.Background(), "catalog.example")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err = limiter.Wait(ctx, "catalog.example")
		assert.Error(t, err, "should fail when context times out")
	})
}

func TestHostOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "gdtot.example", crawl.HostOf("https://gdtot.example/file/1?x=1"))
	assert.Equal(t, "catalog.example", crawl.HostOf("http://catalog.example/page/2/"))
	assert.Equal(t, "", crawl.HostOf("://broken"))
}
