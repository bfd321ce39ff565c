// Package site builds the static site: it pulls the unified post listing
// from a content source, renders each post through the user-supplied
// layouts, and writes the feeds.
package site

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/FrancisHerurd/gtaverso/internal/config"
	"github.com/FrancisHerurd/gtaverso/internal/content"
	"github.com/FrancisHerurd/gtaverso/internal/feeds"
)

const (
	baseLayout   = "base.html"
	singleLayout = "single.html"
	homeLayout   = "home.html"
	listLayout   = "list.html"
	partialsDir  = "partials"
)

// Page is one renderable post: the unified model plus its rendered body
// and resolved output path.
type Page struct {
	Post        content.Post
	ContentHTML template.HTML
	Permalink   string
}

// Site is the template-visible site context.
type Site struct {
	Title       string
	Description string
	BaseURL     string
	Params      map[string]interface{}
	Pages       []*Page
	ByType      map[string][]*Page
	ByGame      map[string][]*Page
}

// Builder renders the static site into the output directory.
type Builder struct {
	cfg    config.Config
	source content.Source
	params map[string]interface{}
	md     goldmark.Markdown
}

// NewBuilder wires a builder over the given source. params is the
// optional site.yaml map exposed to templates as .Site.Params.
func NewBuilder(cfg config.Config, source content.Source, params map[string]interface{}) *Builder {
	return &Builder{
		cfg:    cfg,
		source: source,
		params: params,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
		),
	}
}

// Build runs the full pipeline: clean output, copy static assets, render
// post pages, home and listing pages, then the feeds.
func (b *Builder) Build(ctx context.Context) error {
	if _, err := os.Stat(b.cfg.LayoutsDir); os.IsNotExist(err) {
		return fmt.Errorf("layouts directory %q not found", b.cfg.LayoutsDir)
	}

	posts, err := b.source.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("listing posts: %w", err)
	}

	if err := os.RemoveAll(b.cfg.OutputDir); err != nil {
		return fmt.Errorf("cleaning output directory: %w", err)
	}
	if err := os.MkdirAll(b.cfg.OutputDir, os.ModePerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if _, err := os.Stat(b.cfg.StaticDir); err == nil {
		if err := copyDir(b.cfg.StaticDir, b.cfg.OutputDir); err != nil {
			return fmt.Errorf("copying static assets: %w", err)
		}
	}

	templates, err := b.parseLayouts()
	if err != nil {
		return err
	}

	site := b.assemble(posts)

	for _, page := range site.Pages {
		if page.Permalink == "" {
			log.Printf("site: %q has no routable game/type, skipping page", page.Post.Slug)
			continue
		}
		layout := b.resolveLayout(templates, page.Post.Type)
		if err := b.render(templates, layout, filepath.Join(b.cfg.OutputDir, page.Permalink, "index.html"), struct {
			Site *Site
			Page *Page
		}{site, page}); err != nil {
			return err
		}
	}

	if templates.Lookup(homeLayout) != nil {
		if err := b.render(templates, homeLayout, filepath.Join(b.cfg.OutputDir, "index.html"), struct {
			Site *Site
		}{site}); err != nil {
			return err
		}
	} else {
		log.Printf("site: layout %q not found, skipping homepage", homeLayout)
	}

	if err := b.renderListings(templates, site); err != nil {
		return err
	}

	if err := b.writeFeeds(site); err != nil {
		return err
	}

	log.Printf("site: built %d pages into %s", len(site.Pages), b.cfg.OutputDir)
	return nil
}

// parseLayouts loads templates the same way every theme expects: the
// base layout and partials first so page layouts can reference them,
// then the page layouts.
func (b *Builder) parseLayouts() (*template.Template, error) {
	var basePath string
	var partials, others []string

	err := filepath.WalkDir(b.cfg.LayoutsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".html") {
			return nil
		}
		switch {
		case d.Name() == baseLayout && filepath.Dir(path) == b.cfg.LayoutsDir:
			basePath = path
		case strings.HasPrefix(filepath.Dir(path), filepath.Join(b.cfg.LayoutsDir, partialsDir)):
			partials = append(partials, path)
		default:
			others = append(others, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning layouts: %w", err)
	}
	if basePath == "" {
		return nil, fmt.Errorf("%s not found in layouts directory %q", baseLayout, b.cfg.LayoutsDir)
	}

	templates, err := template.ParseFiles(append([]string{basePath}, partials...)...)
	if err != nil {
		return nil, fmt.Errorf("parsing base layout and partials: %w", err)
	}
	if len(others) > 0 {
		templates, err = templates.ParseFiles(others...)
		if err != nil {
			return nil, fmt.Errorf("parsing page layouts: %w", err)
		}
	}
	return templates, nil
}

// assemble renders each post body and groups pages by taxonomy.
func (b *Builder) assemble(posts []content.Post) *Site {
	site := &Site{
		Title:       b.cfg.SiteTitle,
		Description: b.cfg.SiteDescription,
		BaseURL:     b.cfg.BaseURL,
		Params:      b.params,
		ByType:      make(map[string][]*Page),
		ByGame:      make(map[string][]*Page),
	}

	for _, post := range posts {
		page := &Page{Post: post, Permalink: b.permalink(post)}

		switch post.ContentKind {
		case content.KindMarkdown:
			var buf bytes.Buffer
			if err := b.md.Convert([]byte(post.Content), &buf); err != nil {
				log.Printf("site: rendering markdown for %q: %v", post.Slug, err)
				continue
			}
			page.ContentHTML = template.HTML(buf.String())
		default:
			page.ContentHTML = template.HTML(post.Content)
		}

		site.Pages = append(site.Pages, page)
		site.ByType[post.Type] = append(site.ByType[post.Type], page)
		if post.Game != "" {
			site.ByGame[post.Game] = append(site.ByGame[post.Game], page)
		}
	}
	return site
}

// permalink falls back to /<type>/<slug>/ for posts with a recognized
// type but no game, so local general posts still get a page.
func (b *Builder) permalink(post content.Post) string {
	if p := post.Permalink(); p != "" {
		return p
	}
	if content.ValidType(post.Type) {
		return "/" + post.Type + "/" + post.Slug + "/"
	}
	return ""
}

// resolveLayout picks single-<type>.html when the theme provides one.
func (b *Builder) resolveLayout(templates *template.Template, typ string) string {
	if typ != "" {
		if perType := "single-" + typ + ".html"; templates.Lookup(perType) != nil {
			return perType
		}
	}
	if templates.Lookup(singleLayout) != nil {
		return singleLayout
	}
	return baseLayout
}

// renderListings writes one listing page per (game, type) pair that has
// posts, using list.html.
func (b *Builder) renderListings(templates *template.Template, site *Site) error {
	if templates.Lookup(listLayout) == nil {
		log.Printf("site: layout %q not found, skipping listing pages", listLayout)
		return nil
	}

	type listing struct {
		game, typ string
		pages     []*Page
	}
	byPair := make(map[string]*listing)
	for _, game := range content.Games {
		for _, page := range site.ByGame[game] {
			typ := page.Post.Type
			if !content.ValidType(typ) {
				continue
			}
			key := game + "/" + typ
			if byPair[key] == nil {
				byPair[key] = &listing{game: game, typ: typ}
			}
			byPair[key].pages = append(byPair[key].pages, page)
		}
	}

	for _, l := range byPair {
		data := struct {
			Site     *Site
			Game     string
			GameName string
			Type     string
			TypeName string
			Pages    []*Page
		}{site, l.game, content.DisplayName(l.game), l.typ, content.DisplayName(l.typ), l.pages}

		out := filepath.Join(b.cfg.OutputDir, l.game, l.typ, "index.html")
		if err := b.render(templates, listLayout, out, data); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) writeFeeds(site *Site) error {
	posts := make([]content.Post, 0, len(site.Pages))
	for _, page := range site.Pages {
		posts = append(posts, page.Post)
	}

	rss, err := feeds.RSS(site.Title, site.BaseURL, site.Description, posts)
	if err != nil {
		return fmt.Errorf("rendering rss: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.cfg.OutputDir, "rss.xml"), []byte(rss), 0o644); err != nil {
		return fmt.Errorf("writing rss.xml: %w", err)
	}

	sitemap, err := feeds.Sitemap(site.BaseURL, posts)
	if err != nil {
		return fmt.Errorf("rendering sitemap: %w", err)
	}
	if err := os.WriteFile(filepath.Join(b.cfg.OutputDir, "sitemap.xml"), sitemap, 0o644); err != nil {
		return fmt.Errorf("writing sitemap.xml: %w", err)
	}
	return nil
}

func (b *Builder) render(templates *template.Template, layout, outputPath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(outputPath), err)
	}
	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer out.Close()

	if err := templates.ExecuteTemplate(out, layout, data); err != nil {
		return fmt.Errorf("executing layout %q for %s: %w", layout, outputPath, err)
	}
	return nil
}

// copyDir recursively copies the contents of src into dst.
func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
