package sqlite_test

import (
	"context"
	"testing"

	"github.com/Manish787852/Vega-scraper/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) *sqlite.Ledger {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return sqlite.NewLedger(db)
}

func TestLedger_MarkAndCheck(t *testing.T) {
	t.Parallel()

	ledger := newTestLedger(t)
	ctx := context.Background()

	assert.False(t, ledger.IsProcessed("https://catalog.example/movie/"))

	require.NoError(t, ledger.MarkProcessed(ctx, "https://catalog.example/movie/"))

	assert.True(t, ledger.IsProcessed("https://catalog.example/movie/"))
	assert.False(t, ledger.IsProcessed("https://catalog.example/other/"))
}

func TestLedger_MarkIsIdempotent(t *testing.T) {
	t.Parallel()

	ledger := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.MarkProcessed(ctx, "https://catalog.example/movie/"))
	require.NoError(t, ledger.MarkProcessed(ctx, "https://catalog.example/movie/"))

	n, err := ledger.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLedger_MarksPersistAcrossReopens(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/ledger.db"
	ctx := context.Background()

	db := sqlite.NewDB(path)
	require.NoError(t, db.Open())
	ledger := sqlite.NewLedger(db)
	require.NoError(t, ledger.MarkProcessed(ctx, "https://catalog.example/movie/"))
	require.NoError(t, db.Close())

	db = sqlite.NewDB(path)
	require.NoError(t, db.Open())
	defer db.Close()
	ledger = sqlite.NewLedger(db)

	assert.True(t, ledger.IsProcessed("https://catalog.example/movie/"))
}
