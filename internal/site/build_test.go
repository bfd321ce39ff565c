package site

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrancisHerurd/gtaverso/internal/config"
	"github.com/FrancisHerurd/gtaverso/internal/content/local"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Config{
		SiteTitle:       "GTAverso",
		SiteDescription: "Noticias GTA",
		BaseURL:         "https://gtaverso.example.com",
		OutputDir:       filepath.Join(root, "public"),
		ContentDir:      filepath.Join(root, "content"),
		LayoutsDir:      filepath.Join(root, "layouts"),
		StaticDir:       filepath.Join(root, "static"),
	}

	writeFile(t, filepath.Join(cfg.LayoutsDir, "base.html"),
		`<!DOCTYPE html><title>{{.Site.Title}}</title>`)
	writeFile(t, filepath.Join(cfg.LayoutsDir, "partials", "header.html"),
		`{{define "header"}}<header>{{.Site.Title}}</header>{{end}}`)
	writeFile(t, filepath.Join(cfg.LayoutsDir, "single.html"),
		`{{template "header" .}}<h1>{{.Page.Post.Title}}</h1>{{.Page.ContentHTML}}`)
	writeFile(t, filepath.Join(cfg.LayoutsDir, "home.html"),
		`<ul>{{range .Site.Pages}}<li>{{.Post.Title}}</li>{{end}}</ul>`)
	writeFile(t, filepath.Join(cfg.LayoutsDir, "list.html"),
		`<h2>{{.GameName}} / {{.TypeName}}</h2><p>{{len .Pages}} articulos</p>`)

	writeFile(t, filepath.Join(cfg.ContentDir, "gran-golpe.md"), `---
title: "Gran golpe"
date: "2024-05-01"
description: "El mejor golpe"
game: "gta-5"
category: "noticias"
---
Un **golpe** historico.
`)
	writeFile(t, filepath.Join(cfg.ContentDir, "general.md"), `---
title: "Nota general"
date: "2024-04-01"
category: "noticias"
---
Sin juego asignado.
`)

	writeFile(t, filepath.Join(cfg.StaticDir, "css", "style.css"), "body{}")

	return cfg
}

func TestBuildRendersSite(t *testing.T) {
	cfg := testConfig(t)
	builder := NewBuilder(cfg, local.New(cfg.ContentDir), map[string]interface{}{"twitter": "@gtaverso"})

	require.NoError(t, builder.Build(context.Background()))

	// Post page at its canonical permalink, markdown rendered to HTML.
	page, err := os.ReadFile(filepath.Join(cfg.OutputDir, "gta-5", "noticias", "gran-golpe", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<h1>Gran golpe</h1>")
	assert.Contains(t, string(page), "<strong>golpe</strong>")
	assert.Contains(t, string(page), "<header>GTAverso</header>")

	// Post without a game falls back to /<type>/<slug>/.
	_, err = os.Stat(filepath.Join(cfg.OutputDir, "noticias", "general", "index.html"))
	assert.NoError(t, err)

	// Homepage lists both posts.
	home, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), "Gran golpe")
	assert.Contains(t, string(home), "Nota general")

	// Listing page per (game, type) pair.
	listing, err := os.ReadFile(filepath.Join(cfg.OutputDir, "gta-5", "noticias", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(listing), "Gta 5 / Noticias")
	assert.Contains(t, string(listing), "1 articulos")

	// Static assets copied through.
	_, err = os.Stat(filepath.Join(cfg.OutputDir, "css", "style.css"))
	assert.NoError(t, err)

	// Feeds written.
	rss, err := os.ReadFile(filepath.Join(cfg.OutputDir, "rss.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(rss), "gran-golpe")

	sitemap, err := os.ReadFile(filepath.Join(cfg.OutputDir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "https://gtaverso.example.com/gta-5/noticias/gran-golpe/")
}

func TestBuildCleansOutputDir(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, filepath.Join(cfg.OutputDir, "stale.html"), "old")

	builder := NewBuilder(cfg, local.New(cfg.ContentDir), nil)
	require.NoError(t, builder.Build(context.Background()))

	_, err := os.Stat(filepath.Join(cfg.OutputDir, "stale.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestBuildFailsWithoutLayouts(t *testing.T) {
	cfg := testConfig(t)
	cfg.LayoutsDir = filepath.Join(t.TempDir(), "nope")

	builder := NewBuilder(cfg, local.New(cfg.ContentDir), nil)
	assert.Error(t, builder.Build(context.Background()))
}

func TestBuildFailsWithoutBaseLayout(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Remove(filepath.Join(cfg.LayoutsDir, "base.html")))

	builder := NewBuilder(cfg, local.New(cfg.ContentDir), nil)
	err := builder.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base.html")
}

func TestBuildEmptyContentStillWritesFeeds(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.RemoveAll(cfg.ContentDir))

	builder := NewBuilder(cfg, local.New(cfg.ContentDir), nil)
	require.NoError(t, builder.Build(context.Background()))

	_, err := os.Stat(filepath.Join(cfg.OutputDir, "rss.xml"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(cfg.OutputDir, "sitemap.xml"))
	assert.NoError(t, err)
}
