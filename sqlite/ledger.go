package sqlite

import (
	"context"
	"time"

	vega "github.com/Manish787852/Vega-scraper"
)

// Compile-time interface verification.
var _ vega.Ledger = (*Ledger)(nil)

// Ledger implements vega.Ledger on a processed-URL table. Each mark is one
// insert inside SQLite's own durability guarantees, so it scales past the
// point where the JSON file ledger's whole-file rewrite per mark hurts.
type Ledger struct {
	db *DB
}

// NewLedger creates a Ledger on an open DB.
func NewLedger(db *DB) *Ledger {
	return &Ledger{db: db}
}

// IsProcessed reports whether the URL has been marked in any run.
func (l *Ledger) IsProcessed(url string) bool {
	var n int
	err := l.db.QueryRowContext(context.Background(), `
		SELECT COUNT(*) FROM processed WHERE url = ?
	`, url).Scan(&n)
	return err == nil && n > 0
}

// MarkProcessed records the URL. Marking an already-processed URL is a
// no-op.
func (l *Ledger) MarkProcessed(ctx context.Context, url string) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO processed (url, marked_at)
		VALUES (?, ?)
		ON CONFLICT (url) DO NOTHING
	`, url, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Len returns the number of marked URLs.
func (l *Ledger) Len(ctx context.Context) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM processed`).Scan(&n)
	return n, err
}
