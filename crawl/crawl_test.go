package crawl_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/wikictx"
	"github.com/fwojciec/wikictx/crawl"
	"github.com/fwojciec/wikictx/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	seedHome  = "https://wiki.example.com/wiki/spaces/TEAM/pages/1/Home"
	pageGuide = "https://wiki.example.com/wiki/spaces/TEAM/pages/2/Guide"
	pageOther = "https://wiki.example.com/wiki/spaces/OTHER/pages/5/X"
	pageExt   = "https://docs.external.com/a"
)

// siteFetcher serves pages from a map and counts fetches per URL.
type siteFetcher struct {
	mu    sync.Mutex
	pages map[string]*wikictx.Page
	calls map[string]int
}

func newSiteFetcher(pages map[string]*wikictx.Page) *siteFetcher {
	return &siteFetcher{pages: pages, calls: make(map[string]int)}
}

func (f *siteFetcher) FetchPage(_ context.Context, url string) (*wikictx.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	page, ok := f.pages[url]
	if !ok {
		return nil, wikictx.Errorf(wikictx.EUNAVAILABLE, "HTTP 404 for %s", url)
	}
	copied := *page
	copied.URL = url
	return &copied, nil
}

func (f *siteFetcher) callCount(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

func (f *siteFetcher) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

// newController returns a Controller with pacing and retries disabled so
// tests run instantly, and a pinned clock for stable documents.
func newController(fetcher wikictx.PageFetcher, status wikictx.StatusSink) *crawl.Controller {
	return &crawl.Controller{
		Fetcher:       fetcher,
		Status:        status,
		SpacePacer:    crawl.NewPacer(0),
		ExternalPacer: crawl.NewPacer(0),
		RetryDelays:   []time.Duration{},
		Caller:        "test",
		Now: func() time.Time {
			return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
		},
	}
}

func teamSite() map[string]*wikictx.Page {
	return map[string]*wikictx.Page{
		seedHome: {
			Title: "Home",
			Text:  "Welcome to the team wiki.",
			Links: []string{pageGuide, pageOther, pageExt},
		},
		pageGuide: {
			Title: "Guide",
			Text:  "How we work.",
			Links: []string{seedHome},
		},
		pageOther: {
			Title: "X",
			Text:  "Other space page.",
			Links: []string{"https://wiki.example.com/wiki/spaces/OTHER/pages/6/Y"},
		},
		pageExt: {
			Title: "External",
			Text:  "External doc.",
			Links: []string{"https://docs.external.com/b"},
		},
	}
}

func TestController_CollectContext(t *testing.T) {
	t.Parallel()

	t.Run("crawls one space through all three phases", func(t *testing.T) {
		t.Parallel()

		fetcher := newSiteFetcher(teamSite())
		c := newController(fetcher, nil)

		result, err := c.CollectContext(context.Background(), []string{seedHome})

		require.NoError(t, err)
		assert.Equal(t, 4, result.PageCount)
		assert.Equal(t, 1, result.SpaceCount)
		assert.Equal(t, 1, strings.Count(result.Document, "=== Space: TEAM"))
		assert.Equal(t, 1, strings.Count(result.Document, "--- Page: Home ---"))
		assert.Equal(t, 1, strings.Count(result.Document, "--- Page: Guide ---"))
		assert.Equal(t, 1, strings.Count(result.Document, "--- Linked page (other space): X ---"))
		assert.Equal(t, 1, strings.Count(result.Document, "--- External linked page: External ---"))
	})

	t.Run("BFS visits pages in discovery order", func(t *testing.T) {
		t.Parallel()

		fetcher := newSiteFetcher(teamSite())
		c := newController(fetcher, nil)

		result, err := c.CollectContext(context.Background(), []string{seedHome})

		require.NoError(t, err)
		home := strings.Index(result.Document, "--- Page: Home ---")
		guide := strings.Index(result.Document, "--- Page: Guide ---")
		assert.Less(t, home, guide)
	})

	t.Run("fetches each URL at most once despite multiple link paths", func(t *testing.T) {
		t.Parallel()

		pages := teamSite()
		// Guide links back to Home and to itself via a fragment.
		pages[pageGuide].Links = []string{seedHome, pageGuide + "#section", pageOther}
		fetcher := newSiteFetcher(pages)
		c := newController(fetcher, nil)

		_, err := c.CollectContext(context.Background(), []string{seedHome})

		require.NoError(t, err)
		assert.Equal(t, 1, fetcher.callCount(seedHome))
		assert.Equal(t, 1, fetcher.callCount(pageGuide))
		assert.Equal(t, 1, fetcher.callCount(pageOther))
	})

	t.Run("skips a space already processed under an earlier seed", func(t *testing.T) {
		t.Parallel()

		fetcher := newSiteFetcher(teamSite())
		c := newController(fetcher, nil)

		result, err := c.CollectContext(context.Background(), []string{seedHome, pageGuide})

		require.NoError(t, err)
		assert.Equal(t, 1, result.SpaceCount)
		assert.Equal(t, 1, fetcher.callCount(pageGuide))
	})

	t.Run("invalid seed adds inline error and later seeds still run", func(t *testing.T) {
		t.Parallel()

		fetcher := newSiteFetcher(teamSite())
		status := &mock.StatusSink{}
		c := newController(fetcher, status)

		badSeed := "https://wiki.example.com/wiki/display/TEAM/Home"
		result, err := c.CollectContext(context.Background(), []string{badSeed, seedHome})

		require.NoError(t, err)
		assert.Contains(t, result.Document, "ERROR processing "+badSeed+":")
		assert.Equal(t, 1, result.SpaceCount)
		assert.NotEmpty(t, status.BySeverity(wikictx.SeverityError))
	})

	t.Run("fails when all seeds are blank", func(t *testing.T) {
		t.Parallel()

		c := newController(newSiteFetcher(nil), nil)

		result, err := c.CollectContext(context.Background(), []string{"", "   ", "\t"})

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, wikictx.EINVALID, wikictx.ErrorCode(err))
	})

	t.Run("fetch failure is a warning and the crawl continues", func(t *testing.T) {
		t.Parallel()

		pages := teamSite()
		delete(pages, pageGuide)
		fetcher := newSiteFetcher(pages)
		status := &mock.StatusSink{}
		c := newController(fetcher, status)

		result, err := c.CollectContext(context.Background(), []string{seedHome})

		require.NoError(t, err)
		assert.Equal(t, 3, result.PageCount)
		assert.Equal(t, 1, result.Failed)
		assert.NotContains(t, result.Document, "--- Page: Guide ---")
		assert.NotEmpty(t, status.BySeverity(wikictx.SeverityWarning))
	})

	t.Run("page with empty text contributes no section but its links are followed", func(t *testing.T) {
		t.Parallel()

		pages := teamSite()
		pages[seedHome] = &wikictx.Page{
			Title: "Home",
			Text:  "",
			Links: []string{pageGuide},
		}
		fetcher := newSiteFetcher(pages)
		c := newController(fetcher, nil)

		result, err := c.CollectContext(context.Background(), []string{seedHome})

		require.NoError(t, err)
		assert.NotContains(t, result.Document, "--- Page: Home ---")
		assert.Contains(t, result.Document, "--- Page: Guide ---")
	})

	t.Run("caps other-space expansion at the limit in lexicographic order", func(t *testing.T) {
		t.Parallel()

		pages := map[string]*wikictx.Page{
			seedHome: {
				Title: "Home",
				Text:  "Hub.",
				Links: []string{
					"https://wiki.example.com/wiki/spaces/C/pages/3/c",
					"https://wiki.example.com/wiki/spaces/A/pages/1/a",
					"https://wiki.example.com/wiki/spaces/B/pages/2/b",
				},
			},
			"https://wiki.example.com/wiki/spaces/A/pages/1/a": {Title: "A", Text: "a"},
			"https://wiki.example.com/wiki/spaces/B/pages/2/b": {Title: "B", Text: "b"},
			"https://wiki.example.com/wiki/spaces/C/pages/3/c": {Title: "C", Text: "c"},
		}
		fetcher := newSiteFetcher(pages)
		c := newController(fetcher, nil)
		c.OtherSpaceLimit = 2

		result, err := c.CollectContext(context.Background(), []string{seedHome})

		require.NoError(t, err)
		assert.Contains(t, result.Document, "--- Linked page (other space): A ---")
		assert.Contains(t, result.Document, "--- Linked page (other space): B ---")
		assert.NotContains(t, result.Document, "--- Linked page (other space): C ---")
	})

	t.Run("caps external expansion at the limit", func(t *testing.T) {
		t.Parallel()

		links := make([]string, 0, 15)
		pages := map[string]*wikictx.Page{}
		for i := 0; i < 15; i++ {
			url := fmt.Sprintf("https://docs.external.com/%02d", i)
			links = append(links, url)
			pages[url] = &wikictx.Page{Title: fmt.Sprintf("ext-%02d", i), Text: "x"}
		}
		pages[seedHome] = &wikictx.Page{Title: "Home", Text: "Hub.", Links: links}
		fetcher := newSiteFetcher(pages)
		c := newController(fetcher, nil)

		result, err := c.CollectContext(context.Background(), []string{seedHome})

		require.NoError(t, err)
		// Seed plus the default external cap of 10.
		assert.Equal(t, 11, fetcher.totalCalls())
		assert.Equal(t, 11, result.PageCount)
		assert.Contains(t, result.Document, "ext-09")
		assert.NotContains(t, result.Document, "ext-10")
	})

	t.Run("produces byte-identical documents for identical input", func(t *testing.T) {
		t.Parallel()

		c1 := newController(newSiteFetcher(teamSite()), nil)
		c2 := newController(newSiteFetcher(teamSite()), nil)

		r1, err := c1.CollectContext(context.Background(), []string{seedHome})
		require.NoError(t, err)
		r2, err := c2.CollectContext(context.Background(), []string{seedHome})
		require.NoError(t, err)

		assert.Equal(t, r1.Document, r2.Document)
	})

	t.Run("records run pages with positions and hashes", func(t *testing.T) {
		t.Parallel()

		fetcher := newSiteFetcher(teamSite())
		c := newController(fetcher, nil)

		result, err := c.CollectContext(context.Background(), []string{seedHome})

		require.NoError(t, err)
		require.Len(t, result.Pages, 4)
		for i, page := range result.Pages {
			assert.Equal(t, i, page.Position)
			assert.Equal(t, result.RunID, page.RunID)
			assert.NotEmpty(t, page.ContentHash)
		}
		assert.Equal(t, "https://wiki.example.com::TEAM", result.Pages[0].SpaceKey)
		assert.Equal(t, wikictx.SectionPage, result.Pages[0].Section)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c := newController(newSiteFetcher(teamSite()), nil)

		_, err := c.CollectContext(ctx, []string{seedHome})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
