package wp

import (
	"log"

	"github.com/FrancisHerurd/gtaverso/internal/content"
)

// Status classifies a client result. Empty and Failed are deliberately
// distinct: a post that does not exist and a CMS that is unreachable are
// different conditions even though pages render both as "nothing here".
type Status int

const (
	// StatusOK means the requested data arrived.
	StatusOK Status = iota
	// StatusEmpty means the CMS answered but had nothing matching.
	StatusEmpty
	// StatusFailed means the call failed upstream. The error has already
	// been logged; Err carries it for callers that want to distinguish.
	StatusFailed
)

// Result is the fail-soft return shape of every client operation. The
// client never returns a Go error to its caller; callers branch on
// Status and treat Empty and Failed as renderable empty states.
type Result[T any] struct {
	Status Status
	Value  T
	Err    error
}

// OK reports whether the result carries usable data.
func (r Result[T]) OK() bool { return r.Status == StatusOK }

func ok[T any](v T) Result[T] { return Result[T]{Status: StatusOK, Value: v} }

func empty[T any]() Result[T] { return Result[T]{Status: StatusEmpty} }

func failed[T any](err error) Result[T] { return Result[T]{Status: StatusFailed, Err: err} }

// Term is one taxonomy term as the CMS reports it.
type Term struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// PageInfo carries the cursor state of a posts connection.
type PageInfo struct {
	EndCursor   string `json:"endCursor"`
	HasNextPage bool   `json:"hasNextPage"`
}

// PostsPage is one page of the posts connection plus its cursor.
type PostsPage struct {
	Posts    []content.Post
	PageInfo PageInfo
}

type termConnection struct {
	Nodes []Term `json:"nodes"`
}

type imageNode struct {
	Node struct {
		SourceURL string `json:"sourceUrl"`
	} `json:"node"`
}

type postNode struct {
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Date          string         `json:"date"`
	Excerpt       string         `json:"excerpt"`
	Content       string         `json:"content"`
	FeaturedImage *imageNode     `json:"featuredImage"`
	Juegos        termConnection `json:"juegos"`
	Categories    termConnection `json:"categories"`
}

// toPost normalizes a CMS node into the unified model. When a post
// carries several game or category terms the first node wins; that
// mirrors the CMS admin convention of listing the primary term first.
func (n postNode) toPost() content.Post {
	date, parsed := content.ParseDate(n.Date)
	if !parsed {
		log.Printf("wp: unparseable date %q on post %q, using today", n.Date, n.Slug)
		date = content.Today()
	}

	cover := ""
	if n.FeaturedImage != nil {
		cover = content.NormalizeCover(n.FeaturedImage.Node.SourceURL)
	}

	game := ""
	if len(n.Juegos.Nodes) > 0 {
		game = n.Juegos.Nodes[0].Slug
	}
	typ := ""
	if len(n.Categories.Nodes) > 0 {
		typ = n.Categories.Nodes[0].Slug
	}

	return content.Post{
		Slug:        n.Slug,
		Title:       n.Title,
		Date:        date,
		Description: content.StripHTML(n.Excerpt),
		Content:     n.Content,
		ContentKind: content.KindHTML,
		Cover:       cover,
		Game:        game,
		Type:        typ,
		Source:      "wp",
	}
}
