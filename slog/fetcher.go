package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikictx"
)

// Ensure LoggingPageFetcher implements wikictx.PageFetcher.
var _ wikictx.PageFetcher = (*LoggingPageFetcher)(nil)

// LoggingPageFetcher wraps a PageFetcher with debug logging of each fetch.
type LoggingPageFetcher struct {
	next   wikictx.PageFetcher
	logger *slog.Logger
}

// NewLoggingPageFetcher creates a new LoggingPageFetcher.
func NewLoggingPageFetcher(next wikictx.PageFetcher, logger *slog.Logger) *LoggingPageFetcher {
	return &LoggingPageFetcher{next: next, logger: logger}
}

// FetchPage delegates to the wrapped fetcher and logs the operation.
func (f *LoggingPageFetcher) FetchPage(ctx context.Context, url string) (page *wikictx.Page, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if page != nil {
			attrs = append(attrs, "bytes", len(page.Text), "links", len(page.Links))
		}
		f.logger.Debug("page fetch", attrs...)
	}(time.Now())
	return f.next.FetchPage(ctx, url)
}
