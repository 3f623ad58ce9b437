// Package fs provides file-based persistence: the JSON progress ledger and
// the append-only results sink.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	vega "github.com/Manish787852/Vega-scraper"
)

// Ensure Ledger implements vega.Ledger at compile time.
var _ vega.Ledger = (*Ledger)(nil)

// Ledger is the JSON-file progress ledger. The on-disk form is a flat
// object mapping processed URLs to true, rewritten atomically after every
// mark so a crash mid-run loses at most the candidate in flight.
//
// Loading is permissive: a missing or corrupt file yields an empty ledger
// rather than an error, trading re-scraping for availability. A failed
// persist likewise keeps the mark in memory, so the current run never
// reprocesses the candidate even when the disk is gone.
//
// Ledger is safe for concurrent use.
type Ledger struct {
	path string

	mu        sync.RWMutex
	processed map[string]bool
}

// NewLedger loads or creates the ledger at path.
func NewLedger(path string) *Ledger {
	l := &Ledger{
		path:      path,
		processed: make(map[string]bool),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return l
	}
	// Corrupt content starts fresh.
	_ = json.Unmarshal(data, &l.processed)
	if l.processed == nil {
		l.processed = make(map[string]bool)
	}
	return l
}

// IsProcessed reports whether the URL has been marked in any run.
func (l *Ledger) IsProcessed(url string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.processed[url]
}

// MarkProcessed records the URL and persists the ledger immediately. The
// in-memory mark survives a persist failure.
func (l *Ledger) MarkProcessed(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.processed[url] = true
	return l.persist()
}

// Len returns the number of marked URLs.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.processed)
}

// persist rewrites the ledger file atomically via temp file and rename.
// Must be called with mu held.
func (l *Ledger) persist() error {
	data, err := json.MarshalIndent(l.processed, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
