// Package feeds renders the RSS feed and XML sitemap from the unified
// post listing. Both consume the same posts every page does; they are
// exports, not separate data models.
package feeds

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"github.com/FrancisHerurd/gtaverso/internal/content"
)

// maxFeedItems caps the RSS feed at the usual reader-friendly size.
const maxFeedItems = 20

// RSS renders an RSS 2.0 feed of the newest posts. Posts without a
// routable permalink are left out.
func RSS(title, baseURL, description string, posts []content.Post) (string, error) {
	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: baseURL},
		Description: description,
	}
	if len(posts) > 0 {
		feed.Updated = posts[0].Date
	}

	for _, p := range posts {
		permalink := p.Permalink()
		if permalink == "" {
			continue
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Title:       p.Title,
			Link:        &feeds.Link{Href: absoluteURL(baseURL, permalink)},
			Description: p.Description,
			Created:     p.Date,
			Id:          absoluteURL(baseURL, permalink),
		})
		if len(feed.Items) == maxFeedItems {
			break
		}
	}

	return feed.ToRss()
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders a sitemap.xml with the site root plus one entry per
// routable post.
func Sitemap(baseURL string, posts []content.Post) ([]byte, error) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{{Loc: absoluteURL(baseURL, "/")}},
	}

	for _, p := range posts {
		permalink := p.Permalink()
		if permalink == "" {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     absoluteURL(baseURL, permalink),
			LastMod: p.Date.Format(time.RFC3339),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func absoluteURL(baseURL, path string) string {
	return strings.TrimSuffix(baseURL, "/") + path
}
