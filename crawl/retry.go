package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/wikictx"
)

// PageFetchFunc is the signature for a page fetch function.
type PageFetchFunc func(ctx context.Context, url string) (*wikictx.Page, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays attempts a page fetch with backoff delays between
// attempts. len(delays) is the number of retries after the initial attempt;
// pass a single zero delay in tests to avoid real waiting.
func FetchWithRetryDelays(ctx context.Context, url string, fetch PageFetchFunc, delays []time.Duration) (*wikictx.Page, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := fetch(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
