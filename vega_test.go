package vega_test

import (
	"testing"

	vega "github.com/Manish787852/Vega-scraper"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := vega.Errorf(vega.EINVALID, "invalid page range %q", "x-y")

	assert.Equal(t, vega.EINVALID, vega.ErrorCode(err))
	assert.Equal(t, "invalid page range \"x-y\"", vega.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vega.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vega.EINTERNAL, vega.ErrorCode(assert.AnError))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, vega.ErrorMessage(nil))
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete record", func(t *testing.T) {
		t.Parallel()

		rec := vega.Record{Title: "Some Movie (2023)", Quality: vega.Quality1080p, URL: "https://gdtot.example/x"}
		assert.NoError(t, rec.Validate())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		rec := vega.Record{Quality: vega.Quality1080p, URL: "https://gdtot.example/x"}
		err := rec.Validate()
		assert.Equal(t, vega.EINVALID, vega.ErrorCode(err))
	})

	t.Run("rejects empty URL", func(t *testing.T) {
		t.Parallel()

		rec := vega.Record{Title: "Some Movie", Quality: vega.Quality1080p}
		err := rec.Validate()
		assert.Equal(t, vega.EINVALID, vega.ErrorCode(err))
	})
}
