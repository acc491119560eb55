// Package crawl provides wiki space crawl orchestration. It coordinates
// URL classification, breadth-first page discovery, tiered link expansion,
// and assembly of the aggregated context document.
package crawl

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wikictx"
)

// Frontier sizing for same-space BFS.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Default caps for the bounded expansion phases.
const (
	// DefaultOtherSpaceLimit caps how many other-space links are fetched
	// after a space's BFS completes.
	DefaultOtherSpaceLimit = 20

	// DefaultExternalLimit caps how many external links are fetched.
	DefaultExternalLimit = 10
)

// Controller drives the collection of wiki context. One space is crawled
// per seed URL in three sequential phases: breadth-first discovery of the
// space's own pages, a bounded fetch of linked pages in other spaces, and
// a bounded fetch of external links. Fetches never overlap; the pacers
// keep the request rate polite.
type Controller struct {
	Fetcher wikictx.PageFetcher
	Status  wikictx.StatusSink

	// SpacePacer spaces wiki page fetches (phases 1 and 2).
	// Defaults to DefaultSpacePause.
	SpacePacer *Pacer

	// ExternalPacer spaces external fetches (phase 3).
	// Defaults to DefaultExternalPause.
	ExternalPacer *Pacer

	// OtherSpaceLimit and ExternalLimit cap phases 2 and 3.
	// Zero values select the defaults.
	OtherSpaceLimit int
	ExternalLimit   int

	// RetryDelays configures fetch retry backoff.
	// Defaults to DefaultRetryDelays().
	RetryDelays []time.Duration

	// Caller identifies who requested the collection; it appears in the
	// document header. Defaults to "wikictx".
	Caller string

	// Now supplies the generation timestamp. Defaults to time.Now.
	// Tests pin it to keep documents byte-identical across runs.
	Now func() time.Time
}

// Result holds the outcome of a collection run.
type Result struct {
	RunID       string
	Document    string
	Seeds       []string
	Caller      string
	GeneratedAt time.Time
	Pages       []*wikictx.RunPage
	PageCount   int
	SpaceCount  int
	Failed      int
}

// CollectContext crawls every seed URL's space and returns the aggregated
// context document. Blank seeds are filtered out; if none remain the call
// fails with EINVALID. A seed that cannot be processed contributes an
// inline error marker and the run continues with the next seed.
func (c *Controller) CollectContext(ctx context.Context, seeds []string) (*Result, error) {
	var filtered []string
	for _, seed := range seeds {
		if trimmed := strings.TrimSpace(seed); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	if len(filtered) == 0 {
		return nil, wikictx.Errorf(wikictx.EINVALID, "no valid wiki resources configured")
	}

	session := NewSession()
	generatedAt := c.now()()
	builder := wikictx.NewContextBuilder(generatedAt, c.caller(), len(filtered))
	result := &Result{
		RunID:       session.RunID(),
		Seeds:       filtered,
		Caller:      c.caller(),
		GeneratedAt: generatedAt,
	}

	c.notify(fmt.Sprintf("collecting context from %d resource(s)", len(filtered)), wikictx.SeverityInfo)

	for _, seed := range filtered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := c.crawlSpace(ctx, session, seed, builder, result); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			builder.WriteError(seed, err)
			c.notify(fmt.Sprintf("failed to process %s: %s", seed, wikictx.ErrorMessage(err)), wikictx.SeverityError)
		}
	}

	result.Document = builder.String()
	result.PageCount = builder.PageCount()
	result.SpaceCount = builder.SpaceCount()

	c.notify(fmt.Sprintf("collected %d page(s) across %d space(s)", result.PageCount, result.SpaceCount), wikictx.SeveritySuccess)

	return result, nil
}

// crawlSpace runs the three-phase crawl for a single seed URL.
func (c *Controller) crawlSpace(ctx context.Context, session *Session, seed string, builder *wikictx.ContextBuilder, result *Result) error {
	loc, ok := wikictx.ParseLocator(seed)
	if !ok {
		return wikictx.Errorf(wikictx.EINVALID, "not a wiki space URL (expected .../spaces/<space>/...): %s", seed)
	}

	if !session.MarkSpace(loc.Key()) {
		c.notify(fmt.Sprintf("space %s already collected, skipping %s", loc.Space, seed), wikictx.SeverityInfo)
		return nil
	}

	builder.WriteSpaceHeader(loc)
	c.notify(fmt.Sprintf("crawling space %s on %s", loc.Space, loc.Server), wikictx.SeverityInfo)

	// Phase 1: breadth-first traversal of the space's own pages.
	// Unbounded on purpose; it terminates when the space's link graph
	// is exhausted.
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seed)

	otherSpace := make(map[string]struct{})
	external := make(map[string]struct{})

	for {
		url, ok := frontier.Pop()
		if !ok {
			break
		}
		if !session.MarkVisited(url) {
			continue
		}

		page, err := c.fetch(ctx, url, c.spacePacer())
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			result.Failed++
			c.notify(fmt.Sprintf("fetch failed for %s: %v", url, err), wikictx.SeverityWarning)
			continue
		}

		if page.Text != "" {
			c.record(builder, result, loc, wikictx.SectionPage, page)
		}

		for _, link := range page.Links {
			switch wikictx.CategorizeLink(link, loc) {
			case wikictx.LinkSameSpace:
				frontier.Push(link)
			case wikictx.LinkOtherSpace:
				otherSpace[link] = struct{}{}
			case wikictx.LinkExternal:
				external[link] = struct{}{}
			}
		}
	}

	// Phase 2: bounded depth-1 expansion into other spaces.
	c.expand(ctx, session, builder, result, loc, otherSpace, c.otherSpaceLimit(), wikictx.SectionOtherSpace, c.spacePacer())
	if ctx.Err() != nil {
		return ctx.Err()
	}

	// Phase 3: bounded depth-1 expansion of external links.
	c.expand(ctx, session, builder, result, loc, external, c.externalLimit(), wikictx.SectionExternal, c.externalPacer())
	return ctx.Err()
}

// expand fetches up to limit links from the set, in lexicographic order.
// The caps in the original design applied to an unordered set; sorting
// makes the selection deterministic and reproducible.
func (c *Controller) expand(ctx context.Context, session *Session, builder *wikictx.ContextBuilder, result *Result, loc wikictx.WikiLocator, links map[string]struct{}, limit int, section string, pacer *Pacer) {
	sorted := make([]string, 0, len(links))
	for link := range links {
		sorted = append(sorted, link)
	}
	sort.Strings(sorted)

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	for _, link := range sorted {
		if ctx.Err() != nil {
			return
		}
		if !session.MarkVisited(link) {
			continue
		}

		page, err := c.fetch(ctx, link, pacer)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			result.Failed++
			c.notify(fmt.Sprintf("fetch failed for %s: %v", link, err), wikictx.SeverityWarning)
			continue
		}

		if page.Text != "" {
			c.record(builder, result, loc, section, page)
		}
	}
}

// fetch waits out the pacer, then retrieves a page with retry.
func (c *Controller) fetch(ctx context.Context, url string, pacer *Pacer) (*wikictx.Page, error) {
	if err := pacer.Wait(ctx); err != nil {
		return nil, err
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, url, c.Fetcher.FetchPage, delays)
}

// record appends the page to the document and to the run's page records.
func (c *Controller) record(builder *wikictx.ContextBuilder, result *Result, loc wikictx.WikiLocator, section string, page *wikictx.Page) {
	builder.WritePage(section, page)
	result.Pages = append(result.Pages, &wikictx.RunPage{
		RunID:       result.RunID,
		SpaceKey:    loc.Key(),
		SourceURL:   page.URL,
		Title:       page.Title,
		Section:     section,
		ContentHash: ComputeHash(page.Text),
		Position:    len(result.Pages),
	})
}

func (c *Controller) notify(message string, severity wikictx.Severity) {
	if c.Status != nil {
		c.Status.Notify(message, severity)
	}
}

func (c *Controller) caller() string {
	if c.Caller != "" {
		return c.Caller
	}
	return "wikictx"
}

func (c *Controller) now() func() time.Time {
	if c.Now != nil {
		return c.Now
	}
	return time.Now
}

func (c *Controller) spacePacer() *Pacer {
	if c.SpacePacer == nil {
		c.SpacePacer = NewPacer(DefaultSpacePause)
	}
	return c.SpacePacer
}

func (c *Controller) externalPacer() *Pacer {
	if c.ExternalPacer == nil {
		c.ExternalPacer = NewPacer(DefaultExternalPause)
	}
	return c.ExternalPacer
}

func (c *Controller) otherSpaceLimit() int {
	if c.OtherSpaceLimit > 0 {
		return c.OtherSpaceLimit
	}
	return DefaultOtherSpaceLimit
}

func (c *Controller) externalLimit() int {
	if c.ExternalLimit > 0 {
		return c.ExternalLimit
	}
	return DefaultExternalLimit
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}
