package mock

import (
	"context"

	vega "github.com/Manish787852/Vega-scraper"
)

var _ vega.RecordSink = (*Sink)(nil)

// Sink is a mock implementation of vega.RecordSink.
type Sink struct {
	AppendFn func(ctx context.Context, rec vega.Record) error
}

func (s *Sink) Append(ctx context.Context, rec vega.Record) error {
	return s.AppendFn(ctx, rec)
}

// CollectingSink records every appended record in order.
type CollectingSink struct {
	Records []vega.Record
}

var _ vega.RecordSink = (*CollectingSink)(nil)

func (s *CollectingSink) Append(_ context.Context, rec vega.Record) error {
	s.Records = append(s.Records, rec)
	return nil
}
