// Package content defines the unified post model that both content
// sources (the local markdown directory and the remote CMS) normalize
// into, along with the taxonomy sets used to validate route parameters.
package content

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind tells a consumer which representation the Content field holds.
type Kind string

const (
	// KindMarkdown is raw markdown/MDX text from the local content directory.
	KindMarkdown Kind = "markdown"
	// KindHTML is pre-rendered HTML from the remote CMS.
	KindHTML Kind = "html"
)

// Post is a single published piece of content. The tuple (Game, Type, Slug)
// is its canonical identity and URL path.
type Post struct {
	Slug        string
	Title       string
	Date        time.Time
	Description string
	Content     string
	ContentKind Kind
	Cover       string
	Game        string
	Type        string
	Source      string
}

// Permalink returns the canonical site-relative URL path for the post.
// Posts without a recognized game or type are not routable and get an
// empty permalink.
func (p Post) Permalink() string {
	if !ValidGame(p.Game) || !ValidType(p.Type) {
		return ""
	}
	return "/" + p.Game + "/" + p.Type + "/" + p.Slug + "/"
}

// Games is the closed set of game taxonomy values the portal covers.
var Games = []string{
	"gta-6",
	"gta-5",
	"gta-online",
	"gta-san-andreas",
	"gta-vice-city",
	"gta-trilogy",
}

// Types is the set of content categories. Closed but extensible: adding a
// value here is all a new section needs.
var Types = []string{
	"noticias",
	"guias",
	"trucos",
	"media",
}

// DefaultType is applied when a local file declares no category.
const DefaultType = "noticias"

// ValidGame reports whether s is a recognized game taxonomy slug.
// Matching is exact and case-sensitive.
func ValidGame(s string) bool {
	for _, g := range Games {
		if g == s {
			return true
		}
	}
	return false
}

// ValidType reports whether s is a recognized content type slug.
func ValidType(s string) bool {
	for _, t := range Types {
		if t == s {
			return true
		}
	}
	return false
}

var titleCaser = cases.Title(language.Spanish)

// DisplayName turns a taxonomy slug into a human-readable label,
// e.g. "gta-san-andreas" -> "Gta San Andreas".
func DisplayName(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// SortByDateDesc orders posts newest-first in place. Posts with a zero
// date sink to the end.
func SortByDateDesc(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date.IsZero() {
			return false
		}
		if posts[j].Date.IsZero() {
			return true
		}
		return posts[i].Date.After(posts[j].Date)
	})
}

// Source is the capability both content adapters implement so page-level
// code never cares where a post came from. Adapters fail soft: a missing
// content directory or an unreachable CMS yields an empty result, not an
// error; errors are reserved for conditions the caller could act on.
type Source interface {
	// ListAll returns every post sorted by date descending.
	ListAll(ctx context.Context) ([]Post, error)

	// GetBySlug returns the post with the given slug, or found=false.
	GetBySlug(ctx context.Context, slug string) (Post, bool, error)

	// ListByGameAndType returns posts matching both taxonomy slugs
	// exactly. Unknown values yield an empty list.
	ListByGameAndType(ctx context.Context, game, typ string) ([]Post, error)

	// Games returns the game taxonomy values the source knows about.
	Games(ctx context.Context) ([]string, error)
}
