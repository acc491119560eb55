package crawl

import (
	"strings"
	"sync"

	"github.com/fwojciec/wikictx/bloom"
)

// Frontier is an in-memory FIFO crawl queue with Bloom filter
// deduplication. It backs the breadth-first traversal of a single space:
// each discovered same-space URL is queued at most once, so the queue
// doubles as the space's known-page set.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []string
}

// NewFrontier creates a Frontier sized for n expected URLs with the given
// false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push enqueues a URL. Returns false if the URL has already been seen.
// URL fragments are stripped before deduplication - URLs differing only by
// fragment are considered duplicates.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}

	if f.seen.TestAndAdd(url) {
		return false
	}
	f.queue = append(f.queue, url)
	return true
}

// Pop dequeues the oldest URL. The bool result is false if the frontier
// is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.queue)
}

// Seen returns true if the URL has been queued at some point.
// URL fragments are stripped before checking.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if idx := strings.Index(url, "#"); idx != -1 {
		url = url[:idx]
	}
	return f.seen.Test(url)
}
