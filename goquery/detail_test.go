package goquery_test

import (
	"testing"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/Manish787852/Vega-scraper/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDetailExtractor() *goquery.DetailExtractor {
	return goquery.NewDetailExtractor(nil, nil, nil, nil)
}

func TestDetailExtractor_Intermediaries(t *testing.T) {
	t.Parallel()

	t.Run("accepts marker href with accept label text", func(t *testing.T) {
		t.Parallel()

		html := `
<a href="https://vgmlinks.example/abc">Download Batch Zip 1080p</a>
<a href="https://vgmlinks.example/def">V-Cloud [Batch]</a>
<a href="https://catalog.example/about">About us</a>`

		anchors := newDetailExtractor().Intermediaries(html)

		require.Len(t, anchors, 2)
		assert.Equal(t, "https://vgmlinks.example/abc", anchors[0].Href)
		assert.Equal(t, "Download Batch Zip 1080p", anchors[0].Text)
		assert.Equal(t, "anchor", anchors[0].Source)
	})

	t.Run("requires both marker and accept label", func(t *testing.T) {
		t.Parallel()

		html := `
<a href="https://vgmlinks.example/abc">Read More</a>
<a href="https://randomhost.example/x">Download Batch</a>`

		anchors := newDetailExtractor().Intermediaries(html)
		assert.Empty(t, anchors)
	})

	t.Run("reject vocabulary always excludes", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://vgmlinks.example/abc">How to Download Batch Zip</a>`

		anchors := newDetailExtractor().Intermediaries(html)
		assert.Empty(t, anchors)
	})

	t.Run("episode-like anchors are excluded", func(t *testing.T) {
		t.Parallel()

		html := `
<a href="https://vgmlinks.example/s1e4">Download S01E04 Zip</a>
<a href="https://vgmlinks.example/ep5">Download Episode 5</a>
<a href="https://vgmlinks.example/batch">Season 1 Batch Zip Download</a>`

		anchors := newDetailExtractor().Intermediaries(html)

		require.Len(t, anchors, 1)
		assert.Equal(t, "https://vgmlinks.example/batch", anchors[0].Href)
	})

	t.Run("deduplicates by href", func(t *testing.T) {
		t.Parallel()

		html := `
<a href="https://vgmlinks.example/abc">Download Batch</a>
<a href="https://vgmlinks.example/abc">Download Zip</a>`

		anchors := newDetailExtractor().Intermediaries(html)
		assert.Len(t, anchors, 1)
	})

	t.Run("matches marker in anchor text", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://gate.example/abc">VGMLink Download Batch</a>`

		anchors := newDetailExtractor().Intermediaries(html)
		require.Len(t, anchors, 1)
		assert.Equal(t, "https://gate.example/abc", anchors[0].Href)
	})
}

func TestDetailExtractor_PageQualities(t *testing.T) {
	t.Parallel()

	t.Run("returns distinct qualities in page order", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<h4>Download 480p Links</h4>
<h4>Download 720p Links</h4>
<h4>Download 1080p Links</h4>
<p>Also available in 720p</p>
</body>`

		got := newDetailExtractor().PageQualities(html)
		assert.Equal(t, []vega.Quality{vega.Quality480p, vega.Quality720p, vega.Quality1080p}, got)
	})

	t.Run("returns nil when page mentions no qualities", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, newDetailExtractor().PageQualities("<body><p>no tags here</p></body>"))
	})
}
