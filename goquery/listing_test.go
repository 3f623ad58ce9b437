package goquery_test

import (
	"testing"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/Manish787852/Vega-scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingExtractor_DetailURLs(t *testing.T) {
	t.Parallel()

	t.Run("extracts post-title anchors as absolute URLs", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html><body>
<article><h3 class="entry-title"><a href="/some-movie-2023/">Some Movie (2023)</a></h3></article>
<article><h3 class="entry-title"><a href="https://catalog.example/other-movie/">Other Movie</a></h3></article>
<div class="sidebar"><a href="/category/action/">Action</a></div>
</body></html>`

		e := goquery.NewListingExtractor()
		urls, err := e.DetailURLs(html, "https://catalog.example/page/1/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://catalog.example/some-movie-2023/",
			"https://catalog.example/other-movie/",
		}, urls)
	})

	t.Run("falls back to h2 entry titles", func(t *testing.T) {
		t.Parallel()

		html := `<h2 class="entry-title"><a href="/legacy-post/">Legacy</a></h2>`

		e := goquery.NewListingExtractor()
		urls, err := e.DetailURLs(html, "https://catalog.example/")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://catalog.example/legacy-post/"}, urls)
	})

	t.Run("deduplicates repeated hrefs", func(t *testing.T) {
		t.Parallel()

		html := `
<h3 class="entry-title"><a href="/dup/">One</a></h3>
<h3 class="entry-title"><a href="/dup/">One again</a></h3>`

		e := goquery.NewListingExtractor()
		urls, err := e.DetailURLs(html, "https://catalog.example/")

		require.NoError(t, err)
		assert.Len(t, urls, 1)
	})

	t.Run("skips javascript and fragment hrefs", func(t *testing.T) {
		t.Parallel()

		html := `
<h3 class="entry-title"><a href="javascript:void(0)">Nope</a></h3>
<h3 class="entry-title"><a href="#top">Nope</a></h3>`

		e := goquery.NewListingExtractor()
		urls, err := e.DetailURLs(html, "https://catalog.example/")

		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewListingExtractor()
		_, err := e.DetailURLs("<html></html>", "://not-a-url")

		assert.Equal(t, vega.EINVALID, vega.ErrorCode(err))
	})
}
