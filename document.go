package wikictx

import (
	"fmt"
	"strings"
	"time"
)

// Section labels for the page sections of a context document.
const (
	SectionPage       = "Page"
	SectionOtherSpace = "Linked page (other space)"
	SectionExternal   = "External linked page"
)

// DocumentExporter persists a finished context document as a plain-text
// artifact.
type DocumentExporter interface {
	// Export writes the document and returns the path of the artifact.
	Export(document string, generatedAt time.Time) (path string, err error)
}

// ExportFilename returns the artifact name for a document generated at t,
// e.g. "wiki_context_2026-08-30.txt".
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("wiki_context_%s.txt", t.Format("2006-01-02"))
}

// ContextBuilder assembles the aggregated context document: a global
// header, one section per fetched page grouped under space headers, and a
// trailing summary. It is purely a string-building concern; the crawl
// controller decides what gets written.
type ContextBuilder struct {
	b      strings.Builder
	pages  int
	spaces int
}

// NewContextBuilder returns a builder with the global header written.
// The caller string identifies who requested the collection; resources is
// the number of seed URLs.
func NewContextBuilder(generatedAt time.Time, caller string, resources int) *ContextBuilder {
	cb := &ContextBuilder{}
	cb.b.WriteString("WIKI CONTEXT DOCUMENT\n")
	fmt.Fprintf(&cb.b, "Generated: %s\n", generatedAt.Format(time.RFC3339))
	fmt.Fprintf(&cb.b, "Requested by: %s\n", caller)
	fmt.Fprintf(&cb.b, "Seed resources: %d\n", resources)
	return cb
}

// WriteSpaceHeader starts a new space section. Called once per space,
// before the space's first page.
func (cb *ContextBuilder) WriteSpaceHeader(loc WikiLocator) {
	cb.spaces++
	fmt.Fprintf(&cb.b, "\n=== Space: %s (%s) ===\n", loc.Space, loc.Server)
}

// WritePage appends one page section under the given label.
func (cb *ContextBuilder) WritePage(label string, page *Page) {
	cb.pages++
	title := page.Title
	if title == "" {
		title = page.URL
	}
	fmt.Fprintf(&cb.b, "\n--- %s: %s ---\n", label, title)
	fmt.Fprintf(&cb.b, "Source: %s\n", page.URL)
	cb.b.WriteString(page.Text)
	if !strings.HasSuffix(page.Text, "\n") {
		cb.b.WriteString("\n")
	}
}

// WriteError appends an inline error marker for a seed that could not be
// processed.
func (cb *ContextBuilder) WriteError(url string, err error) {
	fmt.Fprintf(&cb.b, "\nERROR processing %s: %s\n", url, ErrorMessage(err))
}

// PageCount returns the number of page sections written so far.
func (cb *ContextBuilder) PageCount() int { return cb.pages }

// SpaceCount returns the number of space headers written so far.
func (cb *ContextBuilder) SpaceCount() int { return cb.spaces }

// String returns the document with the trailing summary appended.
func (cb *ContextBuilder) String() string {
	var b strings.Builder
	b.WriteString(cb.b.String())
	b.WriteString("\n=== Summary ===\n")
	fmt.Fprintf(&b, "Pages fetched: %d\n", cb.pages)
	fmt.Fprintf(&b, "Spaces visited: %d\n", cb.spaces)
	return b.String()
}
