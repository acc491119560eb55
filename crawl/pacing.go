package crawl

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Nominal inter-request pauses. These are politeness controls, not
// correctness requirements: the crawl must not burst requests at the
// origin server.
const (
	// DefaultSpacePause is the pause between fetches of wiki pages
	// (same-space BFS and other-space expansion).
	DefaultSpacePause = 100 * time.Millisecond

	// DefaultExternalPause is the longer pause between fetches of
	// external pages.
	DefaultExternalPause = 150 * time.Millisecond
)

// Pacer spaces successive requests by a fixed interval using a token
// bucket with burst 1. The first Wait returns immediately; later calls
// block until the interval has elapsed since the previous one.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a Pacer with the given inter-request interval.
// A non-positive interval disables pacing entirely, which is useful in
// tests.
func NewPacer(interval time.Duration) *Pacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer{
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Wait blocks until the interval allows the next request.
// Returns an error if the context is canceled before the wait completes.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
