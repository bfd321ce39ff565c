package content

import (
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// StripHTML removes all markup from s so the result is safe to use as a
// plain-text summary (meta description, card excerpt). Entities are
// decoded and surrounding whitespace trimmed.
func StripHTML(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}

// NormalizeCover makes image references uniform: root-relative paths get
// a leading slash, absolute (scheme-qualified) URLs pass through
// untouched, and an empty reference stays empty so the caller can apply
// its own default.
func NormalizeCover(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if u, err := url.Parse(s); err == nil && u.Scheme != "" {
		return s
	}
	if !strings.HasPrefix(s, "/") {
		return "/" + s
	}
	return s
}

// dateFormats are tried in order when parsing a frontmatter or CMS date.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses s against the accepted date formats. ok is false when
// no format matches.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	for _, format := range dateFormats {
		if parsed, err := time.Parse(format, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// Today returns the current date truncated to midnight UTC. Used as the
// fallback publish date for content that declares none.
func Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
