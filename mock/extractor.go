package mock

import "github.com/fwojciec/wikictx"

var _ wikictx.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikictx.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*wikictx.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*wikictx.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ wikictx.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikictx.Converter.
type Converter struct {
	ConvertFn func(contentHTML string) (string, error)
}

func (c *Converter) Convert(contentHTML string) (string, error) {
	return c.ConvertFn(contentHTML)
}

var _ wikictx.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of wikictx.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (l *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return l.ExtractLinksFn(html, baseURL)
}
