package wikictx

import "strings"

// LinkClass is the bucket a discovered link falls into relative to the
// space currently being crawled.
type LinkClass int

// Link classes in the order they are expanded during a crawl.
const (
	// LinkSkip marks links that are not absolute http(s) URLs.
	// They are dropped silently.
	LinkSkip LinkClass = iota

	// LinkSameSpace marks pages of the active space.
	LinkSameSpace

	// LinkOtherSpace marks wiki pages in a different space on the
	// same server.
	LinkOtherSpace

	// LinkExternal marks everything else, including wikis on other
	// servers.
	LinkExternal
)

// String returns a human-readable name for the class.
func (c LinkClass) String() string {
	switch c {
	case LinkSameSpace:
		return "same-space"
	case LinkOtherSpace:
		return "other-space"
	case LinkExternal:
		return "external"
	default:
		return "skip"
	}
}

// CategorizeLink decides the bucket for a link discovered while crawling
// the space identified by loc.
//
// Same-space membership is an exact string prefix match against
// loc.SpacePrefix(). This is deliberately a string comparison, not a
// parsed-path comparison: URL-encoding variants of the same page fall
// through to the other-space or external bucket.
func CategorizeLink(link string, loc WikiLocator) LinkClass {
	if !strings.HasPrefix(link, "http") {
		return LinkSkip
	}

	if strings.HasPrefix(link, loc.SpacePrefix()) {
		return LinkSameSpace
	}

	if strings.Contains(link, "/wiki/spaces/") {
		if other, ok := ParseLocator(link); ok && other.Server == loc.Server && other.Space != loc.Space {
			return LinkOtherSpace
		}
	}

	return LinkExternal
}
