package wikictx

import "context"

// Page represents a fetched wiki page: its extracted text plus the
// outbound links found in its markup.
type Page struct {
	URL   string
	Title string
	Text  string

	// Links are absolute http(s) URLs, deduplicated within the page,
	// fragments stripped.
	Links []string
}

// PageFetcher retrieves a page and produces extracted text and links.
// Implementations are responsible for sending ambient credentials and
// stripping non-content markup before extraction.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (*Page, error)
}

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// wikis.
type Fetcher interface {
	// Fetch retrieves the HTML document at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}

// ExtractResult holds the extracted content of an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML. Boilerplate
	// (scripts, styles, nav, header, footer, embedded frames) has been
	// removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts clean content HTML to plain text suitable for an
// LLM context document.
type Converter interface {
	Convert(contentHTML string) (string, error)
}

// LinkExtractor collects outbound links from a page's markup.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns absolute http(s) URLs,
	// resolved against baseURL, deduplicated, fragments stripped.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
