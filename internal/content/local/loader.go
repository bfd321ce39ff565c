// Package local loads posts from a directory of markdown/MDX files with
// YAML frontmatter. The filename stem is the slug.
package local

import (
	"bytes"
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/FrancisHerurd/gtaverso/internal/content"
)

// Fallbacks applied when a frontmatter field is missing, not a string,
// or blank after trimming. Malformed content never fails the load; it
// degrades to a renderable generic post.
const (
	defaultTitle       = "Untitled"
	defaultDescription = "No description"
	defaultCover       = "/images/placeholder.jpg"
)

// extensions in lookup priority order for GetBySlug.
var extensions = []string{".mdx", ".md"}

// Loader reads posts from a content directory.
type Loader struct {
	dir string
}

// New returns a loader over dir. The directory may not exist yet; a
// missing directory reads as no content, not an error.
func New(dir string) *Loader {
	return &Loader{dir: dir}
}

// ListAll returns every post in the content directory sorted by date
// descending. Files that cannot be read are skipped with a logged
// warning so one bad file never takes down the whole listing.
func (l *Loader) ListAll(ctx context.Context) ([]content.Post, error) {
	if _, err := os.Stat(l.dir); os.IsNotExist(err) {
		return nil, nil
	}

	var posts []content.Post
	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			log.Printf("content: skipping %s: %v", path, walkErr)
			return nil
		}
		if d.IsDir() || !recognized(d.Name()) {
			return nil
		}

		raw, readErr := os.ReadFile(path)
		if readErr != nil {
			log.Printf("content: skipping unreadable file %s: %v", path, readErr)
			return nil
		}

		posts = append(posts, l.parse(d.Name(), raw))
		return nil
	})
	if err != nil {
		return nil, err
	}

	content.SortByDateDesc(posts)
	return posts, nil
}

// GetBySlug looks up a single file by trying each recognized extension
// in priority order. The slug must equal the filename stem exactly.
func (l *Loader) GetBySlug(ctx context.Context, slug string) (content.Post, bool, error) {
	for _, ext := range extensions {
		raw, err := os.ReadFile(filepath.Join(l.dir, slug+ext))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			log.Printf("content: reading %s%s: %v", slug, ext, err)
			continue
		}
		return l.parse(slug+ext, raw), true, nil
	}
	return content.Post{}, false, nil
}

// ListByGameAndType filters the full listing by exact taxonomy slugs.
func (l *Loader) ListByGameAndType(ctx context.Context, game, typ string) ([]content.Post, error) {
	posts, err := l.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []content.Post
	for _, p := range posts {
		if p.Game == game && p.Type == typ {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Games returns the closed game set. Local content does not extend it.
func (l *Loader) Games(ctx context.Context) ([]string, error) {
	return content.Games, nil
}

// parse builds a Post from one file, applying the field fallbacks.
func (l *Loader) parse(filename string, raw []byte) content.Post {
	var fm map[string]interface{}
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		// No parseable frontmatter block. Treat the whole file as body.
		body = raw
		fm = map[string]interface{}{}
	}

	slug := strings.TrimSuffix(filename, filepath.Ext(filename))

	date := content.Today()
	if raw, ok := stringField(fm, "date"); ok {
		if parsed, ok := content.ParseDate(raw); ok {
			date = parsed
		} else {
			log.Printf("content: unparseable date %q in %s, using today", raw, filename)
		}
	}

	cover := defaultCover
	if c, ok := stringField(fm, "cover"); ok {
		cover = content.NormalizeCover(c)
	}

	typ := content.DefaultType
	if t, ok := stringField(fm, "category"); ok {
		typ = t
	}

	title := defaultTitle
	if t, ok := stringField(fm, "title"); ok {
		title = t
	}

	description := defaultDescription
	if d, ok := stringField(fm, "description"); ok {
		description = content.StripHTML(d)
	}

	game := ""
	if g, ok := stringField(fm, "game"); ok {
		game = g
	}

	return content.Post{
		Slug:        slug,
		Title:       title,
		Date:        date,
		Description: description,
		Content:     string(body),
		ContentKind: content.KindMarkdown,
		Cover:       cover,
		Game:        game,
		Type:        typ,
		Source:      "local",
	}
}

func recognized(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// stringField extracts a frontmatter value that is a non-blank string.
func stringField(fm map[string]interface{}, key string) (string, bool) {
	v, ok := fm[key].(string)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}
