package main

import (
	"context"

	"github.com/fwojciec/wikictx"
)

// Ensure PageFetcher implements wikictx.PageFetcher at compile time.
var _ wikictx.PageFetcher = (*PageFetcher)(nil)

// PageFetcher implements wikictx.PageFetcher by orchestrating raw HTML
// retrieval, content extraction, text conversion, and link collection
// through injected dependencies.
type PageFetcher struct {
	fetcher   wikictx.Fetcher
	extractor wikictx.Extractor
	converter wikictx.Converter
	links     wikictx.LinkExtractor
}

// NewPageFetcher creates a new PageFetcher with the given dependencies.
func NewPageFetcher(
	fetcher wikictx.Fetcher,
	extractor wikictx.Extractor,
	converter wikictx.Converter,
	links wikictx.LinkExtractor,
) *PageFetcher {
	return &PageFetcher{
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
		links:     links,
	}
}

// FetchPage retrieves and processes a single page. Link extraction runs
// against the full document rather than the extracted content, since wiki
// navigation markup carries most of a space's internal links.
func (pf *PageFetcher) FetchPage(ctx context.Context, url string) (*wikictx.Page, error) {
	html, err := pf.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	result, err := pf.extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	text, err := pf.converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, err
	}

	links, err := pf.links.ExtractLinks(html, url)
	if err != nil {
		return nil, err
	}

	return &wikictx.Page{
		URL:   url,
		Title: result.Title,
		Text:  text,
		Links: links,
	}, nil
}
