package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	vega "github.com/Manish787852/Vega-scraper"
)

// Ensure Sink implements vega.RecordSink at compile time.
var _ vega.RecordSink = (*Sink)(nil)

// Sink appends records to a plain-text results file, one line per record:
// title, quality and URL separated by two spaces. Titles can contain
// single spaces, so the double-space separator keeps lines splittable.
//
// The file is opened in append mode and each record is flushed as it
// arrives, so partial runs leave usable results behind.
//
// Sink is safe for concurrent use.
type Sink struct {
	mu   sync.Mutex
	file *os.File
}

// NewSink opens or creates the results file at path.
func NewSink(path string) (*Sink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &Sink{file: f}, nil
}

// Append writes one record line and syncs it to disk.
func (s *Sink) Append(ctx context.Context, rec vega.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	line := fmt.Sprintf("%s  %s  %s\n", rec.Title, rec.Quality, rec.URL)
	if _, err := s.file.WriteString(line); err != nil {
		return err
	}
	return s.file.Sync()
}

// Close closes the underlying file.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
