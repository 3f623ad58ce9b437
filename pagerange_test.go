package vega_test

import (
	"testing"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageRange(t *testing.T) {
	t.Parallel()

	t.Run("parses single page", func(t *testing.T) {
		t.Parallel()

		r, err := vega.ParsePageRange("3")
		require.NoError(t, err)
		assert.Equal(t, vega.PageRange{Start: 3, End: 3}, r)
		assert.Equal(t, []int{3}, r.Pages())
	})

	t.Run("parses inclusive range", func(t *testing.T) {
		t.Parallel()

		r, err := vega.ParsePageRange("1-5")
		require.NoError(t, err)
		assert.Equal(t, vega.PageRange{Start: 1, End: 5}, r)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, r.Pages())
	})

	t.Run("tolerates surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		r, err := vega.ParsePageRange(" 2 - 4 ")
		require.NoError(t, err)
		assert.Equal(t, vega.PageRange{Start: 2, End: 4}, r)
	})

	t.Run("rejects malformed expressions", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{"", "abc", "1-", "-3", "5-2", "0", "1-0", "x-y"} {
			_, err := vega.ParsePageRange(in)
			assert.Equal(t, vega.EINVALID, vega.ErrorCode(err), "input %q", in)
		}
	})
}
