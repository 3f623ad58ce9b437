package bloom_test

import (
	"fmt"
	"testing"

	"github.com/Manish787852/Vega-scraper/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://catalog.example/some-movie-2023/"))

	f.Add("https://catalog.example/some-movie-2023/")

	assert.True(t, f.Test("https://catalog.example/some-movie-2023/"))
	assert.False(t, f.Test("https://catalog.example/other-movie/"))
}

func TestFilter_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	url := "https://catalog.example/some-movie-2023/"

	f.Add(url)
	countAfterFirst := f.EstimatedCount()

	// Re-adding the same detail URL must not change the filter.
	f.Add(url)
	f.Add(url)

	assert.Equal(t, countAfterFirst, f.EstimatedCount())
	assert.True(t, f.Test(url))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	f := bloom.NewFilter(numItems, fpRate)

	for i := 0; i < numItems; i++ {
		f.Add(fmt.Sprintf("https://catalog.example/title-%d/", i))
	}

	falsePositives := 0
	for i := 0; i < testProbes; i++ {
		if f.Test(fmt.Sprintf("https://catalog.example/unseen-%d/", i)) {
			falsePositives++
		}
	}

	// Should be near the configured 1%; allow 2% for statistical variance.
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}
