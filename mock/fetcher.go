package mock

import (
	"context"

	"github.com/fwojciec/wikictx"
)

var _ wikictx.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of wikictx.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(ctx context.Context, url string) (*wikictx.Page, error)
}

func (f *PageFetcher) FetchPage(ctx context.Context, url string) (*wikictx.Page, error) {
	return f.FetchPageFn(ctx, url)
}

var _ wikictx.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wikictx.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
