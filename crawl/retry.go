package crawl

import (
	"context"
	"time"
)

// Default bounds for render attempts, matching the hostile-page environment
// the pipeline targets: generous per-attempt timeout, short fixed pause.
const (
	DefaultMaxAttempts    = 3
	DefaultAttemptTimeout = 60 * time.Second
	DefaultAttemptDelay   = 2 * time.Second
)

// Attempts is the one shared bounded-attempts abstraction used at every
// hop: a fixed number of tries, a per-attempt timeout, and a fixed pause
// between tries. The zero value falls back to the defaults.
type Attempts struct {
	Max     int
	Timeout time.Duration
	Delay   time.Duration
}

// DefaultAttempts returns the standard per-hop policy.
func DefaultAttempts() Attempts {
	return Attempts{Max: DefaultMaxAttempts, Timeout: DefaultAttemptTimeout, Delay: DefaultAttemptDelay}
}

// Do runs op until it succeeds, the attempt budget is spent, or the parent
// context is canceled. Each attempt gets its own timeout-derived context.
// The last error is returned when all attempts fail.
func (a Attempts) Do(ctx context.Context, op func(ctx context.Context) error) error {
	max := a.Max
	if max < 1 {
		max = DefaultMaxAttempts
	}

	var lastErr error
	for attempt := 0; attempt < max; attempt++ {
		attemptCtx := ctx
		cancel := func() {}
		if a.Timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, a.Timeout)
		}
		err := op(attemptCtx)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err

		// Don't sleep after the last attempt.
		if attempt >= max-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(a.Delay):
		}
	}

	return lastErr
}
