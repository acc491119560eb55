package crawl

import (
	"sync"

	"github.com/google/uuid"
)

// Session holds the mutable state of one collection run: the set of URLs
// already fetched and the set of spaces already crawled. A fresh Session
// is created at the start of every CollectContext call; state is never
// shared between runs.
//
// The crawl itself is sequential, but the visited set uses check-and-insert
// under a lock so the fetched-at-most-once invariant holds even if callers
// introduce concurrent fetches later.
type Session struct {
	mu      sync.Mutex
	runID   string
	visited map[string]struct{}
	spaces  map[string]struct{}
}

// NewSession creates an empty session with a fresh run ID.
func NewSession() *Session {
	return &Session{
		runID:   uuid.NewString(),
		visited: make(map[string]struct{}),
		spaces:  make(map[string]struct{}),
	}
}

// RunID returns the unique identifier of this run.
func (s *Session) RunID() string {
	return s.runID
}

// MarkVisited records the URL as fetched. It returns false if the URL was
// already visited in this run.
func (s *Session) MarkVisited(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.visited[url]; ok {
		return false
	}
	s.visited[url] = struct{}{}
	return true
}

// Visited reports whether the URL has been fetched in this run.
func (s *Session) Visited(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.visited[url]
	return ok
}

// MarkSpace records the space key ("server::space") as processed. It
// returns false if the space was already crawled in this run, which
// happens when two seed URLs point into the same space.
func (s *Session) MarkSpace(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.spaces[key]; ok {
		return false
	}
	s.spaces[key] = struct{}{}
	return true
}

// VisitedCount returns the number of URLs fetched so far.
func (s *Session) VisitedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.visited)
}
