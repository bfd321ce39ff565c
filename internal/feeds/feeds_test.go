package feeds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrancisHerurd/gtaverso/internal/content"
)

var samplePosts = []content.Post{
	{
		Slug:        "gran-golpe",
		Title:       "Gran golpe",
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Description: "El mejor golpe",
		Game:        "gta-5",
		Type:        "noticias",
	},
	{
		Slug:  "sin-taxonomia",
		Title: "Huerfano",
		Date:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	},
}

func TestRSS(t *testing.T) {
	rss, err := RSS("GTAverso", "https://gtaverso.example.com/", "Noticias GTA", samplePosts)
	require.NoError(t, err)

	assert.Contains(t, rss, "<title>GTAverso</title>")
	assert.Contains(t, rss, "Gran golpe")
	assert.Contains(t, rss, "https://gtaverso.example.com/gta-5/noticias/gran-golpe/")
	// Posts without a routable permalink stay out of the feed.
	assert.NotContains(t, rss, "Huerfano")
}

func TestSitemap(t *testing.T) {
	out, err := Sitemap("https://gtaverso.example.com", samplePosts)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `<?xml`)
	assert.Contains(t, s, "http://www.sitemaps.org/schemas/sitemap/0.9")
	assert.Contains(t, s, "<loc>https://gtaverso.example.com/</loc>")
	assert.Contains(t, s, "<loc>https://gtaverso.example.com/gta-5/noticias/gran-golpe/</loc>")
	assert.Contains(t, s, "<lastmod>2024-05-01T00:00:00Z</lastmod>")
	assert.NotContains(t, s, "sin-taxonomia")
}

func TestRSSEmptyListing(t *testing.T) {
	rss, err := RSS("GTAverso", "https://gtaverso.example.com", "desc", nil)
	require.NoError(t, err)
	assert.Contains(t, rss, "<channel>")
	assert.NotContains(t, rss, "<item>")
}
