package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikictx"
)

// boilerplateSelector matches markup that never carries page content.
const boilerplateSelector = "script, style, nav, header, footer, aside, iframe, noscript, form"

// contentSelectors are tried in order to locate the main content
// container. The first two cover Confluence-style wikis.
var contentSelectors = []string{
	"#main-content",
	".wiki-content",
	"main",
	"article",
	"body",
}

// Ensure Extractor implements wikictx.Extractor at compile time.
var _ wikictx.Extractor = (*Extractor)(nil)

// Extractor extracts the main content of a wiki page by stripping
// boilerplate markup with CSS selectors. It is the cheap extraction path;
// see the trafilatura package for the heuristics-based alternative.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with
// boilerplate removed. The title comes from og:title or the title tag.
func (e *Extractor) Extract(html string) (*wikictx.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wikictx.Errorf(wikictx.EINVALID, "failed to parse HTML: %v", err)
	}

	title, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	doc.Find(boilerplateSelector).Remove()

	var content string
	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		content, err = goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		break
	}

	return &wikictx.ExtractResult{
		Title:       title,
		ContentHTML: content,
	}, nil
}
