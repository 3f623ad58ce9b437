package vega

import "context"

// Quality is a resolution tag identifying a content variant.
type Quality string

// Known quality tags, best first.
const (
	Quality2160p   Quality = "2160p"
	Quality1080p   Quality = "1080p"
	Quality720p    Quality = "720p"
	Quality480p    Quality = "480p"
	Quality360p    Quality = "360p"
	QualityUnknown Quality = "unknown"
)

// Record is the atomic output unit of the pipeline: one resolved link for
// one content item at one quality. Records are append-only; once emitted
// they are never mutated or retracted.
type Record struct {
	Title   string
	Quality Quality
	URL     string
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if r.Quality == "" {
		return Errorf(EINVALID, "record quality required")
	}
	return nil
}

// RecordSink receives emitted records. Implementations must append each
// record durably before returning; the pipeline never re-emits.
type RecordSink interface {
	Append(ctx context.Context, rec Record) error
}
