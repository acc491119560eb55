package wikictx

import (
	"net/url"
	"strings"
)

// WikiLocator identifies a wiki space: a named collection of pages under
// one server. Two locators are the same space iff both fields are equal.
type WikiLocator struct {
	Server string // scheme://host[:port]
	Space  string // space name segment
}

// ParseLocator derives the space identity from a wiki page URL.
// It recognizes the path pattern .../spaces/<space>/... — the literal
// segment "spaces" followed immediately by a non-empty segment.
// The second return value is false for malformed URLs, relative URLs,
// URLs without a "spaces" segment, or URLs where "spaces" is the last
// segment; in that case the locator is the zero value.
func ParseLocator(rawURL string) (WikiLocator, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return WikiLocator{}, false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, seg := range segments {
		if seg != "spaces" {
			continue
		}
		if i+1 >= len(segments) || segments[i+1] == "" {
			return WikiLocator{}, false
		}
		return WikiLocator{
			Server: u.Scheme + "://" + u.Host,
			Space:  segments[i+1],
		}, true
	}

	return WikiLocator{}, false
}

// Key returns the deduplication key for the space, "server::space".
func (l WikiLocator) Key() string {
	return l.Server + "::" + l.Space
}

// SpacePrefix returns the URL prefix shared by all pages of the space.
func (l WikiLocator) SpacePrefix() string {
	return l.Server + "/wiki/spaces/" + l.Space + "/"
}
